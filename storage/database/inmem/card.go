package inmemdb

import (
	"github.com/cardlect/cardlect/core/school"
)

type cardRepository struct {
	db *cardTable
}

var _ school.CardRepository = (*cardRepository)(nil)

func NewCardRepository(db *DB) *cardRepository {
	return &cardRepository{db: db.card}
}

func (repo *cardRepository) CreateCard(c school.Card) (school.Card, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[c.ID] = &c
	repo.db.order = append(repo.db.order, c.ID)
	return c, nil
}

func (repo *cardRepository) GetCardByID(id string) (school.Card, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return school.Card{}, school.ErrCardNotFound
}

func (repo *cardRepository) QueryTenantCards(tenantID string) ([]school.Card, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cards := make([]school.Card, 0)
	for _, id := range repo.db.order {
		if c := repo.db.table[id]; c.TenantID == tenantID {
			cards = append(cards, *c)
		}
	}
	return cards, nil
}

func (repo *cardRepository) UpdateCard(c school.Card) (school.Card, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[c.ID]; !ok {
		return school.Card{}, school.ErrCardNotFound
	}
	repo.db.table[c.ID] = &c
	return c, nil
}

func (repo *cardRepository) DeleteCard(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrCardNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = dropID(repo.db.order, id)
	return nil
}

type transactionRepository struct {
	db *transactionTable
}

var _ school.TransactionRepository = (*transactionRepository)(nil)

func NewTransactionRepository(db *DB) *transactionRepository {
	return &transactionRepository{db: db.transaction}
}

func (repo *transactionRepository) CreateTransaction(tx school.CardTransaction) (school.CardTransaction, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[tx.ID] = &tx
	repo.db.order = append(repo.db.order, tx.ID)
	return tx, nil
}

func (repo *transactionRepository) QueryTenantTransactions(tenantID string) ([]school.CardTransaction, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	txs := make([]school.CardTransaction, 0)
	for _, id := range repo.db.order {
		if tx := repo.db.table[id]; tx.TenantID == tenantID {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}

func (repo *transactionRepository) QueryCardTransactions(cardID string) ([]school.CardTransaction, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	txs := make([]school.CardTransaction, 0)
	for _, id := range repo.db.order {
		if tx := repo.db.table[id]; tx.CardID == cardID {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}
