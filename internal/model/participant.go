package model

// Participant is a registered student awaiting quiz start. The matricule
// (registration number) is the uniqueness key within a session. Participants
// are never mutated; they are removed only by a session reset.
type Participant struct {
	Grade     string `json:"grade"`
	Name      string `json:"name"`
	ClassName string `json:"className"`
	Matricule string `json:"matricule"`
}

// JoinSessionRequest is the payload for a student joining the live session.
type JoinSessionRequest struct {
	Student JoinStudent `json:"student" binding:"required"`
}

// JoinStudent carries the registration form fields.
type JoinStudent struct {
	Grade     string `json:"grade" binding:"required,max=16"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	ClassName string `json:"className" binding:"required,max=32"`
	Matricule string `json:"matricule" binding:"required,max=16"`
}

// Participant converts the request payload into the stored form.
func (j JoinStudent) Participant() Participant {
	return Participant{
		Grade:     j.Grade,
		Name:      j.Name,
		ClassName: j.ClassName,
		Matricule: j.Matricule,
	}
}

// ValidatePinRequest is the payload for the PIN gate.
type ValidatePinRequest struct {
	Pin string `json:"pin" binding:"required,len=6,numeric"`
}

// AdminLoginRequest is the payload for the admin shared-secret login.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
