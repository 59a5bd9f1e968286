package school

import "github.com/cardlect/cardlect/core"

var (
	// errors
	ErrSchoolNotFound      = core.NewNotFoundError("school not found")
	ErrStaffNotFound       = core.NewNotFoundError("staff member not found")
	ErrStudentNotFound     = core.NewNotFoundError("student not found")
	ErrCardNotFound        = core.NewNotFoundError("card not found")
	ErrExamRecordNotFound  = core.NewNotFoundError("exam record not found")
	ErrAssignmentNotFound  = core.NewNotFoundError("assignment not found")
	ErrTransactionNotFound = core.NewNotFoundError("transaction not found")
)

// Repositories. Query* methods return records in insertion order and an
// empty (never nil) slice for an unknown or empty tenant. Delete* methods
// remove exactly one record or fail with the family's not-found error.
type (
	SchoolRepository interface {
		CreateSchool(s School) (School, error)
		GetSchoolByID(id string) (School, error)
		QueryAllSchools() ([]School, error)
		UpdateSchool(s School) (School, error)
		DeleteSchool(id string) error
	}

	StaffRepository interface {
		CreateStaff(st Staff) (Staff, error)
		GetStaffByID(id string) (Staff, error)
		QueryTenantStaff(tenantID string) ([]Staff, error)
		UpdateStaff(st Staff) (Staff, error)
		DeleteStaff(id string) error
	}

	StudentRepository interface {
		CreateStudent(st Student) (Student, error)
		GetStudentByID(id string) (Student, error)
		QueryTenantStudents(tenantID string) ([]Student, error)
		UpdateStudent(st Student) (Student, error)
		DeleteStudent(id string) error
	}

	CardRepository interface {
		CreateCard(c Card) (Card, error)
		GetCardByID(id string) (Card, error)
		QueryTenantCards(tenantID string) ([]Card, error)
		UpdateCard(c Card) (Card, error)
		DeleteCard(id string) error
	}

	TransactionRepository interface {
		CreateTransaction(tx CardTransaction) (CardTransaction, error)
		QueryTenantTransactions(tenantID string) ([]CardTransaction, error)
		QueryCardTransactions(cardID string) ([]CardTransaction, error)
	}

	ExamRecordRepository interface {
		CreateExamRecord(ex ExamRecord) (ExamRecord, error)
		GetExamRecordByID(id string) (ExamRecord, error)
		QueryTenantExamRecords(tenantID string) ([]ExamRecord, error)
		UpdateExamRecord(ex ExamRecord) (ExamRecord, error)
		DeleteExamRecord(id string) error
	}

	AssignmentRepository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		GetAssignmentByID(id string) (Assignment, error)
		QueryTenantAssignments(tenantID string) ([]Assignment, error)
		UpdateAssignment(a Assignment) (Assignment, error)
		DeleteAssignment(id string) error
	}

	// Repositories bundles the per-family repositories backing one Service.
	Repositories struct {
		School      SchoolRepository
		Staff       StaffRepository
		Student     StudentRepository
		Card        CardRepository
		Transaction TransactionRepository
		ExamRecord  ExamRecordRepository
		Assignment  AssignmentRepository
	}
)
