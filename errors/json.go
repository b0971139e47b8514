package errors

import (
	"encoding/json"
)

// ErrorResponse is the flattened, serializable form of an error. The wrapped
// chain is left out on purpose: it may carry absolute paths.
type ErrorResponse struct {
	Code           string                 `json:"code" yaml:"code"`
	Message        string                 `json:"message" yaml:"message"`
	Classification string                 `json:"classification" yaml:"classification"`
	Context        map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var pe PlatformError
	if As(err, &pe) {
		resp.Message = pe.Message()
		resp.Context = pe.Context()
	}
	return resp
}

// MarshalJSON lets a PlatformError be passed directly to json.Marshal.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, &platformError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
