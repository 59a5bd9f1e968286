package inmemdb

import (
	"github.com/cardlect/cardlect/core/school"
)

type studentRepository struct {
	db *studentTable
}

var _ school.StudentRepository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) CreateStudent(st school.Student) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[st.ID] = &st
	repo.db.order = append(repo.db.order, st.ID)
	return st, nil
}

func (repo *studentRepository) GetStudentByID(id string) (school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if st, ok := repo.db.table[id]; ok {
		return *st, nil
	}
	return school.Student{}, school.ErrStudentNotFound
}

func (repo *studentRepository) QueryTenantStudents(tenantID string) ([]school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]school.Student, 0)
	for _, id := range repo.db.order {
		if st := repo.db.table[id]; st.TenantID == tenantID {
			students = append(students, *st)
		}
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(st school.Student) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[st.ID]; !ok {
		return school.Student{}, school.ErrStudentNotFound
	}
	repo.db.table[st.ID] = &st
	return st, nil
}

func (repo *studentRepository) DeleteStudent(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrStudentNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}
