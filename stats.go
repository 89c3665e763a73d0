package fixedmap

// Stats is a point-in-time occupancy snapshot.
type Stats struct {
	Size     int
	Capacity int
	Free     int
}
