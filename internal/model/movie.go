package model

// Movie is catalog metadata keyed by the TMDB id. The core never writes it;
// it is fetched per request and treated as a read-only value.
type Movie struct {
	ID           int64
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	VoteAverage  float64
	VoteCount    int
	Popularity   float64
	GenreIDs     []int64
}

type SwipeDirection string

const (
	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"
)

func (d SwipeDirection) Valid() bool {
	return d == SwipeLeft || d == SwipeRight
}
