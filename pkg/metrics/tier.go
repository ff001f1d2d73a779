package metrics

type Tier int

const (
	StayConsistent Tier = iota
	Halfway
	AlmostThere
	Achieved
)

func MotivationalTier(percent float64) Tier {
	switch {
	case percent >= 100:
		return Achieved
	case percent >= 75:
		return AlmostThere
	case percent >= 50:
		return Halfway
	default:
		return StayConsistent
	}
}

func (t Tier) String() string {
	switch t {
	case Achieved:
		return "Achieved"
	case AlmostThere:
		return "AlmostThere"
	case Halfway:
		return "Halfway"
	default:
		return "StayConsistent"
	}
}

// Message is the encouragement shown next to a goal
func (t Tier) Message() string {
	switch t {
	case Achieved:
		return "Goal Achieved! Great Job!"
	case AlmostThere:
		return "Almost There! Keep Pushing!"
	case Halfway:
		return "You're Halfway There!"
	default:
		return "Stay Consistent!"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
