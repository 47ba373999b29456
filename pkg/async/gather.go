package async

// GatherN collects the promised values in argument order, regardless of
// which one finishes first.
func GatherN[R any](cs ...<-chan R) <-chan []R {
	return Promise(func() []R {
		results := make([]R, len(cs))
		for i, f := range cs {
			results[i] = <-f
		}
		return results
	})
}

// Map evaluates f(0) .. f(n-1) concurrently and returns the results in index
// order.
func Map[R any](n int, f func(i int) R) []R {
	promises := make([]<-chan R, n)
	for i := range n {
		promises[i] = Promise(func() R { return f(i) })
	}
	return <-GatherN(promises...)
}
