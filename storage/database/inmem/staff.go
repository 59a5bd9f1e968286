package inmemdb

import (
	"github.com/cardlect/cardlect/core/school"
)

type staffRepository struct {
	db *staffTable
}

var _ school.StaffRepository = (*staffRepository)(nil)

func NewStaffRepository(db *DB) *staffRepository {
	return &staffRepository{db: db.staff}
}

func (repo *staffRepository) CreateStaff(st school.Staff) (school.Staff, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[st.ID] = &st
	repo.db.order = append(repo.db.order, st.ID)
	return st, nil
}

func (repo *staffRepository) GetStaffByID(id string) (school.Staff, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if st, ok := repo.db.table[id]; ok {
		return *st, nil
	}
	return school.Staff{}, school.ErrStaffNotFound
}

func (repo *staffRepository) QueryTenantStaff(tenantID string) ([]school.Staff, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	staff := make([]school.Staff, 0)
	for _, id := range repo.db.order {
		if st := repo.db.table[id]; st.TenantID == tenantID {
			staff = append(staff, *st)
		}
	}
	return staff, nil
}

func (repo *staffRepository) UpdateStaff(st school.Staff) (school.Staff, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[st.ID]; !ok {
		return school.Staff{}, school.ErrStaffNotFound
	}
	repo.db.table[st.ID] = &st
	return st, nil
}

func (repo *staffRepository) DeleteStaff(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrStaffNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}
