package scenario

var (
	TitleOptions        = []string{"Mr", "Mrs", "Ms", "Dr"}
	RelationshipOptions = []string{"Spouse", "Parent", "Child", "Sibling", "Legal Guardian", "Attorney"}
)

// CycleOption steps through options from current. An unset or unknown value
// lands on the first option going forward and the last going back.
func CycleOption(options []string, current string, delta int) string {
	n := len(options)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return options[n-1]
		}
		return options[0]
	}
	return options[((idx+delta)%n+n)%n]
}
