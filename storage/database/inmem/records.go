package inmemdb

import (
	"github.com/cardlect/cardlect/core/school"
)

type examRecordRepository struct {
	db *examTable
}

var _ school.ExamRecordRepository = (*examRecordRepository)(nil)

func NewExamRecordRepository(db *DB) *examRecordRepository {
	return &examRecordRepository{db: db.exam}
}

func (repo *examRecordRepository) CreateExamRecord(ex school.ExamRecord) (school.ExamRecord, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[ex.ID] = &ex
	repo.db.order = append(repo.db.order, ex.ID)
	return ex, nil
}

func (repo *examRecordRepository) GetExamRecordByID(id string) (school.ExamRecord, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if ex, ok := repo.db.table[id]; ok {
		return *ex, nil
	}
	return school.ExamRecord{}, school.ErrExamRecordNotFound
}

func (repo *examRecordRepository) QueryTenantExamRecords(tenantID string) ([]school.ExamRecord, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	exams := make([]school.ExamRecord, 0)
	for _, id := range repo.db.order {
		if ex := repo.db.table[id]; ex.TenantID == tenantID {
			exams = append(exams, *ex)
		}
	}
	return exams, nil
}

func (repo *examRecordRepository) UpdateExamRecord(ex school.ExamRecord) (school.ExamRecord, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[ex.ID]; !ok {
		return school.ExamRecord{}, school.ErrExamRecordNotFound
	}
	repo.db.table[ex.ID] = &ex
	return ex, nil
}

func (repo *examRecordRepository) DeleteExamRecord(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrExamRecordNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}

type assignmentRepository struct {
	db *assignmentTable
}

var _ school.AssignmentRepository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) *assignmentRepository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(a school.Assignment) (school.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[a.ID] = &a
	repo.db.order = append(repo.db.order, a.ID)
	return a, nil
}

func (repo *assignmentRepository) GetAssignmentByID(id string) (school.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return school.Assignment{}, school.ErrAssignmentNotFound
}

func (repo *assignmentRepository) QueryTenantAssignments(tenantID string) ([]school.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	assignments := make([]school.Assignment, 0)
	for _, id := range repo.db.order {
		if a := repo.db.table[id]; a.TenantID == tenantID {
			assignments = append(assignments, *a)
		}
	}
	return assignments, nil
}

func (repo *assignmentRepository) UpdateAssignment(a school.Assignment) (school.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[a.ID]; !ok {
		return school.Assignment{}, school.ErrAssignmentNotFound
	}
	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *assignmentRepository) DeleteAssignment(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrAssignmentNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}
