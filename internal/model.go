package internal

import "time"

// Mood is the user's self-reported daily state.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodStressed Mood = "Stressed"
	MoodTired    Mood = "Tired"
	MoodFocused  Mood = "Focused"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserRecord is the stored form of a user, including credentials.
// It never goes onto the wire.
type UserRecord struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type WellnessLog struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Mood          Mood      `json:"mood"`
	SleepDuration float64   `json:"sleepDuration"` // hours, 0–12
	ActivityNotes string    `json:"activityNotes"`
	CreatedAt     time.Time `json:"createdAt"`
}

type WellnessLogForm struct {
	Mood          Mood    `json:"mood" validate:"required"`
	SleepDuration float64 `json:"sleepDuration" validate:"gte=0,lte=12"`
	ActivityNotes string  `json:"activityNotes" validate:"required,max=200"`
}

// WellnessLogPatch carries a partial update; nil fields are left untouched.
type WellnessLogPatch struct {
	Mood          *Mood    `json:"mood,omitempty"`
	SleepDuration *float64 `json:"sleepDuration,omitempty"`
	ActivityNotes *string  `json:"activityNotes,omitempty"`
}

// Apply merges the set fields of the patch into log.
func (p WellnessLogPatch) Apply(log *WellnessLog) {
	if p.Mood != nil {
		log.Mood = *p.Mood
	}
	if p.SleepDuration != nil {
		log.SleepDuration = *p.SleepDuration
	}
	if p.ActivityNotes != nil {
		log.ActivityNotes = *p.ActivityNotes
	}
}

type LoginData struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupData struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
