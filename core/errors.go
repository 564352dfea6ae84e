package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

// ErrorInvalidCredential is returned whenever an (identity, address, secret)
// triple fails validation. Unknown identity, unknown address and wrong secret
// are deliberately indistinguishable.
type ErrorInvalidCredential struct {
}

func (e ErrorInvalidCredential) Error() string {
	return "Invalid Credential"
}

func NewErrorInvalidCredential() ErrorInvalidCredential {
	return ErrorInvalidCredential{}
}

type ErrorUpstreamUnavailable struct {
}

func (e ErrorUpstreamUnavailable) Error() string {
	return "Upstream Unavailable"
}

func NewErrorUpstreamUnavailable() ErrorUpstreamUnavailable {
	return ErrorUpstreamUnavailable{}
}
