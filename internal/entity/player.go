package entity

const (
	PlayerOneID = 1
	PlayerTwoID = 2
)

type Mode int

const (
	ModeHumanVsHuman    Mode = 1
	ModeHumanVsComputer Mode = 2
)

func (that Mode) IsValid() bool {
	return that == ModeHumanVsHuman || that == ModeHumanVsComputer
}

func (that Mode) String() string {
	if that == ModeHumanVsComputer {
		return "Human vs Computer"
	}
	return "Human vs Human"
}

type Player struct {
	ID   int
	Mark Mark
}

func NewPlayer(id int) Player {
	return Player{ID: id, Mark: MarkFor(id)}
}

// MarkFor - participant 1 always plays X and participant 2 plays O.
func MarkFor(participantID int) Mark {
	if participantID == PlayerTwoID {
		return MarkO
	}
	return MarkX
}

func IsParticipantID(id int) bool {
	return id == PlayerOneID || id == PlayerTwoID
}

func Opponent(participantID int) int {
	if participantID == PlayerOneID {
		return PlayerTwoID
	}
	return PlayerOneID
}
