// internal/domain/homework/response.go
package homework

// CheckResponse validates the shape of a decoded API answer and returns its
// homeworks list unchanged. An empty list is valid.
func CheckResponse(response any) ([]any, error) {
	payload, ok := response.(map[string]any)
	if !ok {
		return nil, ErrResponseNotMapping
	}

	raw, ok := payload["homeworks"]
	if !ok {
		return nil, ErrMissingHomeworks
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, ErrHomeworksNotList
	}
	return homeworks, nil
}
