package entity

// Version is a product release an article can be pinned to.
type Version struct {
	ID    int64
	Label string
}

// Category groups articles by topic.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Module is the product area an article belongs to.
type Module struct {
	ID   int64
	Name string
}

// Tag labels articles; articles and tags are related many-to-many.
type Tag struct {
	ID   int64
	Name string
}
