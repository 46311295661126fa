package proxx

// Cell is the full per-cell state. HolesAround is only meaningful for
// non-hole cells; hole cells keep it at 0.
type Cell struct {
	Hole        bool
	HolesAround int
	Opened      bool
}
