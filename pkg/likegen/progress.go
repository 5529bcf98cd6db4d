package likegen

// Progress receives per-stage progress from a run.
// Start is called once per output file with the number of users it covers.
type Progress interface {
	Start(stage string, total int)
	Add(n int)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(string, int) {}
func (nopProgress) Add(int)           {}
func (nopProgress) Finish()           {}
