package school

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cardlect/cardlect/core"
)

var (
	errUnknownTenant       = errors.New("tenant does not exist")
	errInsufficientBalance = errors.New("insufficient card balance")
	errCardBlocked         = errors.New("card is blocked")
	errTenantHasDependents = errors.New("school still has dependent records")
)

// translate converts raw validator errors into a core.ValidationError so the
// store boundary exposes a single error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return core.NewValidationError(err, core.TranslateValidationErrors(vErrs)...)
	}
	return err
}

// Service is the tenant-partitioned registry of operational entities shared
// by every page. All mutations validate at this boundary and notify
// subscribers after committing.
type Service struct {
	repos Repositories
	mail  core.EmailService
	subs  subscribers
}

func NewService(repos Repositories, mailSvc core.EmailService) *Service {
	return &Service{repos: repos, mail: mailSvc}
}

// Subscribe registers fn to be called synchronously after every committed
// mutation; it returns a function that removes the subscription.
func (svc *Service) Subscribe(fn func(Event)) func() {
	return svc.subs.add(fn)
}

func (svc *Service) checkTenant(tenantID string) error {
	if _, err := svc.repos.School.GetSchoolByID(tenantID); err != nil {
		if core.IsNotFound(err) {
			return core.NewValidationError(errUnknownTenant, core.FieldError{Field: "tenant_id", Error: errUnknownTenant.Error()})
		}
		return err
	}
	return nil
}

func newID() string { return uuid.New().String() }

// Schools

func (svc *Service) AddSchool(ns NewSchool) (School, error) {
	if err := ns.Validate(); err != nil {
		return School{}, err
	}
	now := time.Now().UTC()
	sch := School{
		ID:        newID(),
		Name:      ns.Name,
		Region:    ns.Region,
		Address:   ns.Address,
		Phone:     ns.Phone,
		Status:    SchoolActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	sch, err := svc.repos.School.CreateSchool(sch)
	if err != nil {
		return School{}, err
	}
	svc.subs.notify(Event{Entity: EntitySchool, Action: ActionCreated, ID: sch.ID, TenantID: sch.ID})
	return sch, nil
}

func (svc *Service) GetSchool(id string) (School, error) {
	return svc.repos.School.GetSchoolByID(id)
}

func (svc *Service) QuerySchools() ([]School, error) {
	return svc.repos.School.QueryAllSchools()
}

func (svc *Service) UpdateSchool(id string, us UpdateSchool) (School, error) {
	if err := us.Validate(); err != nil {
		return School{}, err
	}
	sch, err := svc.repos.School.GetSchoolByID(id)
	if err != nil {
		return School{}, err
	}
	if us.Name != "" {
		sch.Name = us.Name
	}
	if us.Region != "" {
		sch.Region = us.Region
	}
	if us.Address != "" {
		sch.Address = us.Address
	}
	if us.Phone != "" {
		sch.Phone = us.Phone
	}
	if us.Status != nil {
		sch.Status = *us.Status
	}
	sch.UpdatedAt = time.Now().UTC()

	sch, err = svc.repos.School.UpdateSchool(sch)
	if err != nil {
		return School{}, err
	}
	svc.subs.notify(Event{Entity: EntitySchool, Action: ActionUpdated, ID: sch.ID, TenantID: sch.ID})
	return sch, nil
}

func (svc *Service) ToggleSchoolStatus(id string) (School, error) {
	sch, err := svc.repos.School.GetSchoolByID(id)
	if err != nil {
		return School{}, err
	}
	sch.Status = sch.Status.Toggled()
	sch.UpdatedAt = time.Now().UTC()

	sch, err = svc.repos.School.UpdateSchool(sch)
	if err != nil {
		return School{}, err
	}
	svc.subs.notify(Event{Entity: EntitySchool, Action: ActionUpdated, ID: sch.ID, TenantID: sch.ID})
	return sch, nil
}

// DeleteSchool removes a tenant root. It is rejected while dependent records
// exist; dependents must be deleted first.
func (svc *Service) DeleteSchool(id string) error {
	if _, err := svc.repos.School.GetSchoolByID(id); err != nil {
		return err
	}
	deps, err := svc.tenantDependents(id)
	if err != nil {
		return err
	}
	if len(deps) > 0 {
		flds := make([]core.FieldError, 0, len(deps))
		for _, dep := range deps {
			flds = append(flds, core.FieldError{Field: dep, Error: "delete these records first"})
		}
		return core.NewValidationError(errTenantHasDependents, flds...)
	}
	if err := svc.repos.School.DeleteSchool(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntitySchool, Action: ActionDeleted, ID: id, TenantID: id})
	return nil
}

func (svc *Service) tenantDependents(tenantID string) ([]string, error) {
	deps := make([]string, 0, 5)

	staff, err := svc.repos.Staff.QueryTenantStaff(tenantID)
	if err != nil {
		return nil, err
	}
	if len(staff) > 0 {
		deps = append(deps, string(EntityStaff))
	}

	students, err := svc.repos.Student.QueryTenantStudents(tenantID)
	if err != nil {
		return nil, err
	}
	if len(students) > 0 {
		deps = append(deps, string(EntityStudent))
	}

	cards, err := svc.repos.Card.QueryTenantCards(tenantID)
	if err != nil {
		return nil, err
	}
	if len(cards) > 0 {
		deps = append(deps, string(EntityCard))
	}

	exams, err := svc.repos.ExamRecord.QueryTenantExamRecords(tenantID)
	if err != nil {
		return nil, err
	}
	if len(exams) > 0 {
		deps = append(deps, string(EntityExamRecord))
	}

	assignments, err := svc.repos.Assignment.QueryTenantAssignments(tenantID)
	if err != nil {
		return nil, err
	}
	if len(assignments) > 0 {
		deps = append(deps, string(EntityAssignment))
	}
	return deps, nil
}

// Staff

func (svc *Service) AddStaff(ns NewStaff) (Staff, error) {
	if err := ns.Validate(); err != nil {
		return Staff{}, err
	}
	if err := svc.checkTenant(ns.TenantID); err != nil {
		return Staff{}, err
	}
	now := time.Now().UTC()
	joinDate := ns.JoinDate
	if joinDate.IsZero() {
		joinDate = now
	}
	perms := ns.Permissions
	if perms == nil {
		perms = []string{}
	}
	st := Staff{
		ID:          newID(),
		TenantID:    ns.TenantID,
		Name:        ns.Name,
		JobTitle:    ns.JobTitle,
		Department:  ns.Department,
		Email:       ns.Email,
		Phone:       ns.Phone,
		JoinDate:    joinDate,
		Status:      StaffActive,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	st, err := svc.repos.Staff.CreateStaff(st)
	if err != nil {
		return Staff{}, err
	}
	svc.subs.notify(Event{Entity: EntityStaff, Action: ActionCreated, ID: st.ID, TenantID: st.TenantID})
	svc.sendStaffWelcomeEmail(st)
	return st, nil
}

func (svc *Service) sendStaffWelcomeEmail(st Staff) {
	if st.Email == "" || svc.mail == nil {
		return
	}
	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: st.Name, Address: st.Email}},
		Subject: "Welcome to " + core.Conf.AppName,
		Body: fmt.Sprintf(
			"Hi %s,\r\n\r\nYou have been registered as %s on %s. Ask your school administrator for your access badge.\r\n",
			st.Name, st.JobTitle, core.Conf.AppName),
	})
}

func (svc *Service) GetStaff(id string) (Staff, error) {
	return svc.repos.Staff.GetStaffByID(id)
}

// TenantStaff returns the tenant's staff in insertion order.
func (svc *Service) TenantStaff(tenantID string) ([]Staff, error) {
	return svc.repos.Staff.QueryTenantStaff(tenantID)
}

func (svc *Service) UpdateStaff(id string, us UpdateStaff) (Staff, error) {
	if err := us.Validate(); err != nil {
		return Staff{}, err
	}
	st, err := svc.repos.Staff.GetStaffByID(id)
	if err != nil {
		return Staff{}, err
	}
	if us.Name != "" {
		st.Name = us.Name
	}
	if us.JobTitle != "" {
		st.JobTitle = us.JobTitle
	}
	if us.Department != "" {
		st.Department = us.Department
	}
	if us.Email != "" {
		st.Email = us.Email
	}
	if us.Phone != "" {
		st.Phone = us.Phone
	}
	if us.Status != nil {
		st.Status = *us.Status
	}
	if us.Permissions != nil {
		st.Permissions = us.Permissions
	}
	st.UpdatedAt = time.Now().UTC()

	st, err = svc.repos.Staff.UpdateStaff(st)
	if err != nil {
		return Staff{}, err
	}
	svc.subs.notify(Event{Entity: EntityStaff, Action: ActionUpdated, ID: st.ID, TenantID: st.TenantID})
	return st, nil
}

func (svc *Service) ToggleStaffStatus(id string) (Staff, error) {
	st, err := svc.repos.Staff.GetStaffByID(id)
	if err != nil {
		return Staff{}, err
	}
	st.Status = st.Status.Toggled()
	st.UpdatedAt = time.Now().UTC()

	st, err = svc.repos.Staff.UpdateStaff(st)
	if err != nil {
		return Staff{}, err
	}
	svc.subs.notify(Event{Entity: EntityStaff, Action: ActionUpdated, ID: st.ID, TenantID: st.TenantID})
	return st, nil
}

func (svc *Service) DeleteStaff(id string) error {
	st, err := svc.repos.Staff.GetStaffByID(id)
	if err != nil {
		return err
	}
	if err := svc.repos.Staff.DeleteStaff(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntityStaff, Action: ActionDeleted, ID: id, TenantID: st.TenantID})
	return nil
}

// Students

func (svc *Service) AddStudent(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	if err := svc.checkTenant(ns.TenantID); err != nil {
		return Student{}, err
	}
	now := time.Now().UTC()
	enrolledAt := ns.EnrolledAt
	if enrolledAt.IsZero() {
		enrolledAt = now
	}
	st := Student{
		ID:           newID(),
		TenantID:     ns.TenantID,
		Name:         ns.Name,
		GuardianName: ns.GuardianName,
		ClassLevel:   ns.ClassLevel,
		Email:        ns.Email,
		EnrolledAt:   enrolledAt,
		Status:       StudentActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	st, err := svc.repos.Student.CreateStudent(st)
	if err != nil {
		return Student{}, err
	}
	svc.subs.notify(Event{Entity: EntityStudent, Action: ActionCreated, ID: st.ID, TenantID: st.TenantID})
	return st, nil
}

func (svc *Service) GetStudent(id string) (Student, error) {
	return svc.repos.Student.GetStudentByID(id)
}

func (svc *Service) TenantStudents(tenantID string) ([]Student, error) {
	return svc.repos.Student.QueryTenantStudents(tenantID)
}

func (svc *Service) UpdateStudent(id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	st, err := svc.repos.Student.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if us.Name != "" {
		st.Name = us.Name
	}
	if us.GuardianName != "" {
		st.GuardianName = us.GuardianName
	}
	if us.ClassLevel != "" {
		st.ClassLevel = us.ClassLevel
	}
	if us.Email != "" {
		st.Email = us.Email
	}
	if us.Status != nil {
		st.Status = *us.Status
	}
	st.UpdatedAt = time.Now().UTC()

	st, err = svc.repos.Student.UpdateStudent(st)
	if err != nil {
		return Student{}, err
	}
	svc.subs.notify(Event{Entity: EntityStudent, Action: ActionUpdated, ID: st.ID, TenantID: st.TenantID})
	return st, nil
}

func (svc *Service) ToggleStudentStatus(id string) (Student, error) {
	st, err := svc.repos.Student.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	st.Status = st.Status.Toggled()
	st.UpdatedAt = time.Now().UTC()

	st, err = svc.repos.Student.UpdateStudent(st)
	if err != nil {
		return Student{}, err
	}
	svc.subs.notify(Event{Entity: EntityStudent, Action: ActionUpdated, ID: st.ID, TenantID: st.TenantID})
	return st, nil
}

func (svc *Service) DeleteStudent(id string) error {
	st, err := svc.repos.Student.GetStudentByID(id)
	if err != nil {
		return err
	}
	if err := svc.repos.Student.DeleteStudent(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntityStudent, Action: ActionDeleted, ID: id, TenantID: st.TenantID})
	return nil
}

// Cards

func (svc *Service) AddCard(nc NewCard) (Card, error) {
	if err := nc.Validate(); err != nil {
		return Card{}, err
	}
	if err := svc.checkTenant(nc.TenantID); err != nil {
		return Card{}, err
	}
	now := time.Now().UTC()
	c := Card{
		ID:        newID(),
		TenantID:  nc.TenantID,
		HolderID:  nc.HolderID,
		Serial:    nc.Serial,
		Balance:   nc.Balance,
		Status:    CardActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c, err := svc.repos.Card.CreateCard(c)
	if err != nil {
		return Card{}, err
	}
	svc.subs.notify(Event{Entity: EntityCard, Action: ActionCreated, ID: c.ID, TenantID: c.TenantID})
	return c, nil
}

func (svc *Service) GetCard(id string) (Card, error) {
	return svc.repos.Card.GetCardByID(id)
}

func (svc *Service) TenantCards(tenantID string) ([]Card, error) {
	return svc.repos.Card.QueryTenantCards(tenantID)
}

// UpdateCard patches card metadata. Balance is deliberately not patchable;
// it only moves through RecordTransaction.
func (svc *Service) UpdateCard(id string, uc UpdateCard) (Card, error) {
	if err := uc.Validate(); err != nil {
		return Card{}, err
	}
	c, err := svc.repos.Card.GetCardByID(id)
	if err != nil {
		return Card{}, err
	}
	if uc.HolderID != "" {
		c.HolderID = uc.HolderID
	}
	if uc.Serial != "" {
		c.Serial = uc.Serial
	}
	if uc.Status != nil {
		c.Status = *uc.Status
	}
	c.UpdatedAt = time.Now().UTC()

	c, err = svc.repos.Card.UpdateCard(c)
	if err != nil {
		return Card{}, err
	}
	svc.subs.notify(Event{Entity: EntityCard, Action: ActionUpdated, ID: c.ID, TenantID: c.TenantID})
	return c, nil
}

func (svc *Service) ToggleCardStatus(id string) (Card, error) {
	c, err := svc.repos.Card.GetCardByID(id)
	if err != nil {
		return Card{}, err
	}
	c.Status = c.Status.Toggled()
	c.UpdatedAt = time.Now().UTC()

	c, err = svc.repos.Card.UpdateCard(c)
	if err != nil {
		return Card{}, err
	}
	svc.subs.notify(Event{Entity: EntityCard, Action: ActionUpdated, ID: c.ID, TenantID: c.TenantID})
	return c, nil
}

func (svc *Service) DeleteCard(id string) error {
	c, err := svc.repos.Card.GetCardByID(id)
	if err != nil {
		return err
	}
	if err := svc.repos.Card.DeleteCard(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntityCard, Action: ActionDeleted, ID: id, TenantID: c.TenantID})
	return nil
}

// RecordTransaction applies a ledger entry to a card. A purchase that would
// drive the balance negative fails and leaves the balance unchanged; blocked
// cards accept no transactions at all.
func (svc *Service) RecordTransaction(nt NewCardTransaction) (CardTransaction, error) {
	if err := nt.Validate(); err != nil {
		return CardTransaction{}, err
	}
	c, err := svc.repos.Card.GetCardByID(nt.CardID)
	if err != nil {
		return CardTransaction{}, err
	}
	if c.Status == CardBlocked {
		return CardTransaction{}, core.NewValidationError(errCardBlocked, core.FieldError{Field: "card_id", Error: errCardBlocked.Error()})
	}
	switch nt.Kind {
	case TransactionPurchase:
		if c.Balance < nt.Amount {
			return CardTransaction{}, core.NewValidationError(errInsufficientBalance, core.FieldError{Field: "amount", Error: errInsufficientBalance.Error()})
		}
		c.Balance -= nt.Amount
	case TransactionTopup:
		c.Balance += nt.Amount
	}
	c.UpdatedAt = time.Now().UTC()

	if c, err = svc.repos.Card.UpdateCard(c); err != nil {
		return CardTransaction{}, err
	}
	tx := CardTransaction{
		ID:        newID(),
		TenantID:  c.TenantID,
		CardID:    c.ID,
		Kind:      nt.Kind,
		Amount:    nt.Amount,
		Note:      nt.Note,
		CreatedAt: time.Now().UTC(),
	}
	if tx, err = svc.repos.Transaction.CreateTransaction(tx); err != nil {
		return CardTransaction{}, err
	}
	svc.subs.notify(Event{Entity: EntityCard, Action: ActionUpdated, ID: c.ID, TenantID: c.TenantID})
	svc.subs.notify(Event{Entity: EntityTransaction, Action: ActionCreated, ID: tx.ID, TenantID: tx.TenantID})
	return tx, nil
}

func (svc *Service) TenantTransactions(tenantID string) ([]CardTransaction, error) {
	return svc.repos.Transaction.QueryTenantTransactions(tenantID)
}

func (svc *Service) CardTransactions(cardID string) ([]CardTransaction, error) {
	return svc.repos.Transaction.QueryCardTransactions(cardID)
}

// Exam records

func (svc *Service) AddExamRecord(ne NewExamRecord) (ExamRecord, error) {
	if err := ne.Validate(); err != nil {
		return ExamRecord{}, err
	}
	if err := svc.checkTenant(ne.TenantID); err != nil {
		return ExamRecord{}, err
	}
	now := time.Now().UTC()
	ex := ExamRecord{
		ID:        newID(),
		TenantID:  ne.TenantID,
		StudentID: ne.StudentID,
		Subject:   ne.Subject,
		Score:     ne.Score,
		Term:      ne.Term,
		Status:    ExamDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	ex, err := svc.repos.ExamRecord.CreateExamRecord(ex)
	if err != nil {
		return ExamRecord{}, err
	}
	svc.subs.notify(Event{Entity: EntityExamRecord, Action: ActionCreated, ID: ex.ID, TenantID: ex.TenantID})
	return ex, nil
}

func (svc *Service) GetExamRecord(id string) (ExamRecord, error) {
	return svc.repos.ExamRecord.GetExamRecordByID(id)
}

func (svc *Service) TenantExamRecords(tenantID string) ([]ExamRecord, error) {
	return svc.repos.ExamRecord.QueryTenantExamRecords(tenantID)
}

func (svc *Service) UpdateExamRecord(id string, ue UpdateExamRecord) (ExamRecord, error) {
	if err := ue.Validate(); err != nil {
		return ExamRecord{}, err
	}
	ex, err := svc.repos.ExamRecord.GetExamRecordByID(id)
	if err != nil {
		return ExamRecord{}, err
	}
	if ue.Subject != "" {
		ex.Subject = ue.Subject
	}
	if ue.Score != nil {
		ex.Score = *ue.Score
	}
	if ue.Term != "" {
		ex.Term = ue.Term
	}
	if ue.Status != nil {
		ex.Status = *ue.Status
	}
	ex.UpdatedAt = time.Now().UTC()

	ex, err = svc.repos.ExamRecord.UpdateExamRecord(ex)
	if err != nil {
		return ExamRecord{}, err
	}
	svc.subs.notify(Event{Entity: EntityExamRecord, Action: ActionUpdated, ID: ex.ID, TenantID: ex.TenantID})
	return ex, nil
}

// ToggleExamStatus flips between draft and published.
func (svc *Service) ToggleExamStatus(id string) (ExamRecord, error) {
	ex, err := svc.repos.ExamRecord.GetExamRecordByID(id)
	if err != nil {
		return ExamRecord{}, err
	}
	ex.Status = ex.Status.Toggled()
	ex.UpdatedAt = time.Now().UTC()

	ex, err = svc.repos.ExamRecord.UpdateExamRecord(ex)
	if err != nil {
		return ExamRecord{}, err
	}
	svc.subs.notify(Event{Entity: EntityExamRecord, Action: ActionUpdated, ID: ex.ID, TenantID: ex.TenantID})
	return ex, nil
}

func (svc *Service) DeleteExamRecord(id string) error {
	ex, err := svc.repos.ExamRecord.GetExamRecordByID(id)
	if err != nil {
		return err
	}
	if err := svc.repos.ExamRecord.DeleteExamRecord(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntityExamRecord, Action: ActionDeleted, ID: id, TenantID: ex.TenantID})
	return nil
}

// Assignments

func (svc *Service) AddAssignment(na NewAssignment) (Assignment, error) {
	if err := na.Validate(); err != nil {
		return Assignment{}, err
	}
	if err := svc.checkTenant(na.TenantID); err != nil {
		return Assignment{}, err
	}
	now := time.Now().UTC()
	a := Assignment{
		ID:        newID(),
		TenantID:  na.TenantID,
		Title:     na.Title,
		Subject:   na.Subject,
		DueDate:   na.DueDate,
		Status:    AssignmentOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a, err := svc.repos.Assignment.CreateAssignment(a)
	if err != nil {
		return Assignment{}, err
	}
	svc.subs.notify(Event{Entity: EntityAssignment, Action: ActionCreated, ID: a.ID, TenantID: a.TenantID})
	return a, nil
}

func (svc *Service) GetAssignment(id string) (Assignment, error) {
	return svc.repos.Assignment.GetAssignmentByID(id)
}

func (svc *Service) TenantAssignments(tenantID string) ([]Assignment, error) {
	return svc.repos.Assignment.QueryTenantAssignments(tenantID)
}

func (svc *Service) UpdateAssignment(id string, ua UpdateAssignment) (Assignment, error) {
	if err := ua.Validate(); err != nil {
		return Assignment{}, err
	}
	a, err := svc.repos.Assignment.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	if ua.Title != "" {
		a.Title = ua.Title
	}
	if ua.Subject != "" {
		a.Subject = ua.Subject
	}
	if ua.DueDate != nil {
		a.DueDate = *ua.DueDate
	}
	if ua.Status != nil {
		a.Status = *ua.Status
	}
	a.UpdatedAt = time.Now().UTC()

	a, err = svc.repos.Assignment.UpdateAssignment(a)
	if err != nil {
		return Assignment{}, err
	}
	svc.subs.notify(Event{Entity: EntityAssignment, Action: ActionUpdated, ID: a.ID, TenantID: a.TenantID})
	return a, nil
}

func (svc *Service) ToggleAssignmentStatus(id string) (Assignment, error) {
	a, err := svc.repos.Assignment.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	a.Status = a.Status.Toggled()
	a.UpdatedAt = time.Now().UTC()

	a, err = svc.repos.Assignment.UpdateAssignment(a)
	if err != nil {
		return Assignment{}, err
	}
	svc.subs.notify(Event{Entity: EntityAssignment, Action: ActionUpdated, ID: a.ID, TenantID: a.TenantID})
	return a, nil
}

func (svc *Service) DeleteAssignment(id string) error {
	a, err := svc.repos.Assignment.GetAssignmentByID(id)
	if err != nil {
		return err
	}
	if err := svc.repos.Assignment.DeleteAssignment(id); err != nil {
		return err
	}
	svc.subs.notify(Event{Entity: EntityAssignment, Action: ActionDeleted, ID: id, TenantID: a.TenantID})
	return nil
}
