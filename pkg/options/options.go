package options

// CallOptions carries one mutation of an option struct T, used to build
// variadic functional options such as WithLogger(...).
type CallOptions[T any] struct {
	applyFunc func(o *T)
}

func NewCallOptions[T any](applyFunc func(o *T)) CallOptions[T] {
	return CallOptions[T]{
		applyFunc: applyFunc,
	}
}

// ApplyCallOptions applies callOpts in order on top of defaultOptions.
func ApplyCallOptions[T any](callOpts []CallOptions[T], defaultOptions T) T {
	opts := defaultOptions
	for _, callOpt := range callOpts {
		if callOpt.applyFunc == nil {
			continue
		}

		callOpt.applyFunc(&opts)
	}

	return opts
}
