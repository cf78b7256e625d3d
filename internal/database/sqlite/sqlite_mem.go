package sqlite

func NewInMemory() (*DB, func(), error) {
	return open(":memory:")
}
