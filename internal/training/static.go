package training

import "fmt"

type SetOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StaticData feeds the dropdowns of the training forms.
type StaticData struct {
	Sets    []SetOption `json:"sets"`
	Weights []float64   `json:"weights"`
	Reps    []int       `json:"reps"`
}

const (
	maxSets   = 10
	maxReps   = 30
	maxWeight = 300.0
)

func NewStaticData() StaticData {
	sets := make([]SetOption, 0, maxSets)
	for i := 1; i <= maxSets; i++ {
		sets = append(sets, SetOption{ID: i, Name: fmt.Sprintf("Set %d", i)})
	}

	reps := make([]int, 0, maxReps)
	for i := 1; i <= maxReps; i++ {
		reps = append(reps, i)
	}

	// half a kilo steps for light dumbbells, plate steps above
	var weights []float64
	for w := 0.0; w < 10; w += 0.5 {
		weights = append(weights, w)
	}
	for w := 10.0; w <= maxWeight; w += 2.5 {
		weights = append(weights, w)
	}

	return StaticData{
		Sets:    sets,
		Weights: weights,
		Reps:    reps,
	}
}
