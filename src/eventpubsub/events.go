package eventpubsub

const (
	LadderGeneratedTopic   = "ladder:generated"
	ExerciseGeneratedTopic = "exercise:generated"
)

type LadderGeneratedEvent struct {
	NumStrikes int
	StockPrice float64
	Valid      bool
}

type ExerciseGeneratedEvent struct {
	ExerciseID   string
	ExerciseType string
	NumStrikes   int
	Disclosures  int
	UsedFallback bool
}
