package async

// Promise runs f on its own goroutine and delivers the result once.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R, 1)
	go func() {
		out <- f()
	}()
	return out
}
