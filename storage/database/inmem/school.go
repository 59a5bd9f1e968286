package inmemdb

import (
	"github.com/cardlect/cardlect/core/school"
)

type schoolRepository struct {
	db *schoolTable
}

var _ school.SchoolRepository = (*schoolRepository)(nil)

func NewSchoolRepository(db *DB) *schoolRepository {
	return &schoolRepository{db: db.school}
}

func (repo *schoolRepository) CreateSchool(s school.School) (school.School, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[s.ID] = &s
	repo.db.order = append(repo.db.order, s.ID)
	return s, nil
}

func (repo *schoolRepository) GetSchoolByID(id string) (school.School, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return school.School{}, school.ErrSchoolNotFound
}

func (repo *schoolRepository) QueryAllSchools() ([]school.School, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	schools := make([]school.School, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		schools = append(schools, *repo.db.table[id])
	}
	return schools, nil
}

func (repo *schoolRepository) UpdateSchool(s school.School) (school.School, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[s.ID]; !ok {
		return school.School{}, school.ErrSchoolNotFound
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *schoolRepository) DeleteSchool(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrSchoolNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}
