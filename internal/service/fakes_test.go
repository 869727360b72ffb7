package service_test

import (
	"errors"

	"gorm.io/gorm"

	"github.com/prepstack/examprep/internal/model"
)

var errStoreDown = errors.New("store unavailable")

// In-memory repository fakes. They mirror the gorm repositories' observable
// behavior closely enough for service tests: capped scans, score-descending
// order is irrelevant because services re-sort, and missing rows surface
// gorm.ErrRecordNotFound.

type fakeAttemptRepo struct {
	attempts   []model.Attempt
	nextID     uint
	tests      map[uint]model.Test
	failCreate bool
	failReads  bool
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{nextID: 1, tests: map[uint]model.Test{}}
}

func (f *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	if f.failCreate {
		return errStoreDown
	}
	attempt.ID = f.nextID
	f.nextID++
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	for i := range f.attempts {
		if f.attempts[i].ID == id {
			a := f.attempts[i]
			return &a, nil
		}
	}
	return &model.Attempt{}, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindByIDWithTest(id uint) (*model.Attempt, error) {
	a, err := f.FindByID(id)
	if err != nil {
		return a, err
	}
	a.Test = f.tests[a.TestID]
	return a, nil
}

func (f *fakeAttemptRepo) FindAll(limit int) ([]model.Attempt, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	return capSlice(f.attempts, limit), nil
}

func (f *fakeAttemptRepo) FindByTest(testID uint, limit int) ([]model.Attempt, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.TestID == testID {
			out = append(out, a)
		}
	}
	return capSlice(out, limit), nil
}

func (f *fakeAttemptRepo) FindByUser(userID uint) ([]model.Attempt, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) FindByTestAndUser(testID, userID uint) ([]model.Attempt, error) {
	if f.failReads {
		return nil, errStoreDown
	}
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.TestID == testID && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func capSlice(attempts []model.Attempt, limit int) []model.Attempt {
	if limit > 0 && len(attempts) > limit {
		return append([]model.Attempt(nil), attempts[:limit]...)
	}
	return append([]model.Attempt(nil), attempts...)
}

type fakeTestRepo struct {
	tests  map[uint]model.Test
	nextID uint
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: map[uint]model.Test{}, nextID: 1}
}

func (f *fakeTestRepo) Create(test *model.Test) error {
	test.ID = f.nextID
	f.nextID++
	f.tests[test.ID] = *test
	return nil
}

func (f *fakeTestRepo) FindByID(id uint) (*model.Test, error) {
	t, ok := f.tests[id]
	if !ok {
		return &model.Test{}, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f *fakeTestRepo) FindByIDWithQuestions(id uint) (*model.Test, error) {
	return f.FindByID(id)
}

func (f *fakeTestRepo) FindAll() ([]model.Test, error) {
	var out []model.Test
	for _, t := range f.tests {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTestRepo) FindByIDs(ids []uint) ([]model.Test, error) {
	var out []model.Test
	for _, id := range ids {
		if t, ok := f.tests[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	byTest map[uint][]model.Question
}

func (f *fakeQuestionRepo) FindByTestID(testID uint) ([]model.Question, error) {
	return f.byTest[testID], nil
}

type fakeUserRepo struct {
	users  map[uint]model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return &model.User{}, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByIDs(ids []uint) ([]model.User, error) {
	var out []model.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
