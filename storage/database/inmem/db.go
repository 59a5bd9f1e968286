// Package inmemdb is the in-memory storage backend. Tables keep their
// insertion order so tenant queries come back in the order records were
// added.
package inmemdb

import (
	"sync"

	"github.com/cardlect/cardlect/core/school"
)

type DB struct {
	school      *schoolTable
	staff       *staffTable
	student     *studentTable
	card        *cardTable
	transaction *transactionTable
	exam        *examTable
	assignment  *assignmentTable
}

type (
	schoolTable struct {
		sync.RWMutex
		table map[string]*school.School
		order []string
	}

	staffTable struct {
		sync.RWMutex
		table map[string]*school.Staff
		order []string
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*school.Student
		order []string
	}

	cardTable struct {
		sync.RWMutex
		table map[string]*school.Card
		order []string
	}

	transactionTable struct {
		sync.RWMutex
		table map[string]*school.CardTransaction
		order []string
	}

	examTable struct {
		sync.RWMutex
		table map[string]*school.ExamRecord
		order []string
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*school.Assignment
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		school:      &schoolTable{table: make(map[string]*school.School)},
		staff:       &staffTable{table: make(map[string]*school.Staff)},
		student:     &studentTable{table: make(map[string]*school.Student)},
		card:        &cardTable{table: make(map[string]*school.Card)},
		transaction: &transactionTable{table: make(map[string]*school.CardTransaction)},
		exam:        &examTable{table: make(map[string]*school.ExamRecord)},
		assignment:  &assignmentTable{table: make(map[string]*school.Assignment)},
	}
	return db, nil
}

// NewRepositories bundles all repositories backed by this DB.
func NewRepositories(db *DB) school.Repositories {
	return school.Repositories{
		School:      NewSchoolRepository(db),
		Staff:       NewStaffRepository(db),
		Student:     NewStudentRepository(db),
		Card:        NewCardRepository(db),
		Transaction: NewTransactionRepository(db),
		ExamRecord:  NewExamRecordRepository(db),
		Assignment:  NewAssignmentRepository(db),
	}
}

// dropID removes id from an order slice, preserving relative order.
func dropID(order []string, id string) []string {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
