package funct

func Map[T any, R any](slide []T, transformer func(x T) (R, error)) ([]R, error) {
	mapped := make([]R, 0, len(slide))
	for _, v := range slide {
		value, err := transformer(v)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, value)
	}
	return mapped, nil
}

func Index[T any](slide []T, cond func(x T) bool) int {
	for i, v := range slide {
		if cond(v) {
			return i
		}
	}
	return -1
}

func Some[T any](slide []T, cond func(x T) bool) bool {
	for _, v := range slide {
		if cond(v) {
			return true
		}
	}
	return false
}

func Filter[T any](slide []T, cond func(x T) bool) []T {
	filtered := make([]T, 0, len(slide))
	for _, v := range slide {
		if cond(v) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
