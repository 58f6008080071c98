package matcher

func fixtureFunction(x int) int {
	return x + 1
}

type fixtureCounter struct{ n int }

func (c *fixtureCounter) Increment() int {
	c.n++
	return c.n
}

var fixtureClosure = func() int {
	return 42
}
