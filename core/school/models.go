package school

import (
	"time"

	"github.com/cardlect/cardlect/core"
)

// Status enums. Values are closed sets validated at the store boundary;
// transitions only happen through Update*/Toggle* operations.
type (
	SchoolStatus     string
	StaffStatus      string
	StudentStatus    string
	CardStatus       string
	ExamStatus       string
	AssignmentStatus string
	TransactionKind  string
)

const (
	SchoolActive   SchoolStatus = "active"
	SchoolInactive SchoolStatus = "inactive"

	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"

	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"

	CardActive  CardStatus = "active"
	CardBlocked CardStatus = "blocked"

	ExamDraft     ExamStatus = "draft"
	ExamPublished ExamStatus = "published"

	AssignmentOpen   AssignmentStatus = "open"
	AssignmentClosed AssignmentStatus = "closed"

	TransactionTopup    TransactionKind = "topup"
	TransactionPurchase TransactionKind = "purchase"
)

func (s SchoolStatus) Toggled() SchoolStatus {
	if s == SchoolActive {
		return SchoolInactive
	}
	return SchoolActive
}

func (s StaffStatus) Toggled() StaffStatus {
	if s == StaffActive {
		return StaffInactive
	}
	return StaffActive
}

func (s StudentStatus) Toggled() StudentStatus {
	if s == StudentActive {
		return StudentInactive
	}
	return StudentActive
}

func (s CardStatus) Toggled() CardStatus {
	if s == CardActive {
		return CardBlocked
	}
	return CardActive
}

func (s ExamStatus) Toggled() ExamStatus {
	if s == ExamDraft {
		return ExamPublished
	}
	return ExamDraft
}

func (s AssignmentStatus) Toggled() AssignmentStatus {
	if s == AssignmentOpen {
		return AssignmentClosed
	}
	return AssignmentOpen
}

// School is the tenant root; every other entity below scopes to one.
type School struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Region    string       `json:"region"`
	Address   string       `json:"address"`
	Phone     string       `json:"phone"`
	Status    SchoolStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"` // UTC
	UpdatedAt time.Time    `json:"updated_at"` // UTC
}

type Staff struct {
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	Name        string      `json:"name"`
	JobTitle    string      `json:"job_title"` // free-form, not an identity.Role
	Department  string      `json:"department"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	JoinDate    time.Time   `json:"join_date"`
	Status      StaffStatus `json:"status"`
	Permissions []string    `json:"permissions"`
	CreatedAt   time.Time   `json:"created_at"` // UTC
	UpdatedAt   time.Time   `json:"updated_at"` // UTC
}

type Student struct {
	ID           string        `json:"id"`
	TenantID     string        `json:"tenant_id"`
	Name         string        `json:"name"`
	GuardianName string        `json:"guardian_name"`
	ClassLevel   string        `json:"class_level"`
	Email        string        `json:"email"`
	EnrolledAt   time.Time     `json:"enrolled_at"`
	Status       StudentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"` // UTC
	UpdatedAt    time.Time     `json:"updated_at"` // UTC
}

// Card is a student wallet. Balance is in minor currency units and never
// goes negative; it is only reachable through Service.RecordTransaction.
type Card struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	HolderID  string     `json:"holder_id"`
	Serial    string     `json:"serial"`
	Balance   int64      `json:"balance"`
	Status    CardStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"` // UTC
	UpdatedAt time.Time  `json:"updated_at"` // UTC
}

// CardTransaction is an append-only ledger entry; a topup credits the card,
// a purchase debits it.
type CardTransaction struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	CardID    string          `json:"card_id"`
	Kind      TransactionKind `json:"kind"`
	Amount    int64           `json:"amount"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"` // UTC
}

type ExamRecord struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	StudentID string     `json:"student_id"`
	Subject   string     `json:"subject"`
	Score     int        `json:"score"`
	Term      string     `json:"term"`
	Status    ExamStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"` // UTC
	UpdatedAt time.Time  `json:"updated_at"` // UTC
}

type Assignment struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenant_id"`
	Title     string           `json:"title"`
	Subject   string           `json:"subject"`
	DueDate   time.Time        `json:"due_date"`
	Status    AssignmentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"` // UTC
	UpdatedAt time.Time        `json:"updated_at"` // UTC
}

// Inputs

// NewSchool contains information needed to register a new School.
type NewSchool struct {
	Name    string `json:"name" validate:"required"`
	Region  string `json:"region" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (ns *NewSchool) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Region = core.CleanString(ns.Region)
	return translate(core.Validate.Struct(ns))
}

// UpdateSchool defines what may be modified on an existing School.
// Empty fields keep their original values.
type UpdateSchool struct {
	Name    string        `json:"name"`
	Region  string        `json:"region"`
	Address string        `json:"address"`
	Phone   string        `json:"phone"`
	Status  *SchoolStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (us *UpdateSchool) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Region = core.CleanString(us.Region)
	return translate(core.Validate.Struct(us))
}

type NewStaff struct {
	TenantID    string    `json:"tenant_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	JobTitle    string    `json:"job_title" validate:"required"`
	Department  string    `json:"department"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Phone       string    `json:"phone"`
	JoinDate    time.Time `json:"join_date"`
	Permissions []string  `json:"permissions"`
}

func (ns *NewStaff) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.JobTitle = core.CleanString(ns.JobTitle)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return translate(core.Validate.Struct(ns))
}

type UpdateStaff struct {
	Name        string       `json:"name"`
	JobTitle    string       `json:"job_title"`
	Department  string       `json:"department"`
	Email       string       `json:"email" validate:"omitempty,email"`
	Phone       string       `json:"phone"`
	Status      *StaffStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Permissions []string     `json:"permissions"`
}

func (us *UpdateStaff) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.JobTitle = core.CleanString(us.JobTitle)
	us.Email = core.CleanString(us.Email, true /* lower */)
	return translate(core.Validate.Struct(us))
}

type NewStudent struct {
	TenantID     string    `json:"tenant_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	GuardianName string    `json:"guardian_name"`
	ClassLevel   string    `json:"class_level"`
	Email        string    `json:"email" validate:"omitempty,email"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return translate(core.Validate.Struct(ns))
}

type UpdateStudent struct {
	Name         string         `json:"name"`
	GuardianName string         `json:"guardian_name"`
	ClassLevel   string         `json:"class_level"`
	Email        string         `json:"email" validate:"omitempty,email"`
	Status       *StudentStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	return translate(core.Validate.Struct(us))
}

type NewCard struct {
	TenantID string `json:"tenant_id" validate:"required"`
	HolderID string `json:"holder_id" validate:"required"`
	Serial   string `json:"serial"`
	Balance  int64  `json:"balance" validate:"gte=0"`
}

func (nc *NewCard) Validate() error {
	nc.Serial = core.CleanString(nc.Serial)
	return translate(core.Validate.Struct(nc))
}

type UpdateCard struct {
	HolderID string      `json:"holder_id"`
	Serial   string      `json:"serial"`
	Status   *CardStatus `json:"status" validate:"omitempty,oneof=active blocked"`
}

func (uc *UpdateCard) Validate() error {
	uc.Serial = core.CleanString(uc.Serial)
	return translate(core.Validate.Struct(uc))
}

type NewCardTransaction struct {
	CardID string          `json:"card_id" validate:"required"`
	Kind   TransactionKind `json:"kind" validate:"required,oneof=topup purchase"`
	Amount int64           `json:"amount" validate:"gt=0"`
	Note   string          `json:"note"`
}

func (nt *NewCardTransaction) Validate() error {
	nt.Note = core.CleanString(nt.Note)
	return translate(core.Validate.Struct(nt))
}

type NewExamRecord struct {
	TenantID  string `json:"tenant_id" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Score     int    `json:"score" validate:"gte=0,lte=100"`
	Term      string `json:"term"`
}

func (ne *NewExamRecord) Validate() error {
	ne.Subject = core.CleanString(ne.Subject)
	return translate(core.Validate.Struct(ne))
}

type UpdateExamRecord struct {
	Subject string      `json:"subject"`
	Score   *int        `json:"score" validate:"omitempty,gte=0,lte=100"`
	Term    string      `json:"term"`
	Status  *ExamStatus `json:"status" validate:"omitempty,oneof=draft published"`
}

func (ue *UpdateExamRecord) Validate() error {
	ue.Subject = core.CleanString(ue.Subject)
	return translate(core.Validate.Struct(ue))
}

type NewAssignment struct {
	TenantID string    `json:"tenant_id" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Subject  string    `json:"subject"`
	DueDate  time.Time `json:"due_date"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	return translate(core.Validate.Struct(na))
}

type UpdateAssignment struct {
	Title   string            `json:"title"`
	Subject string            `json:"subject"`
	DueDate *time.Time        `json:"due_date"`
	Status  *AssignmentStatus `json:"status" validate:"omitempty,oneof=open closed"`
}

func (ua *UpdateAssignment) Validate() error {
	ua.Title = core.CleanString(ua.Title)
	ua.Subject = core.CleanString(ua.Subject)
	return translate(core.Validate.Struct(ua))
}
