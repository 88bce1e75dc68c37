package git

import "context"

// Compile-time check that MockRepository implements Repository.
var _ Repository = (*MockRepository)(nil)

// MockRepository is a configurable mock implementation of Repository for testing.
// Each method is backed by a function field. If the function field is nil,
// the method returns sensible zero values.
type MockRepository struct {
	CurrentBranchFunc func(context.Context) (string, error)
	BranchesFunc      func(context.Context) ([]Branch, error)
}

func (m *MockRepository) CurrentBranch(ctx context.Context) (string, error) {
	if m.CurrentBranchFunc != nil {
		return m.CurrentBranchFunc(ctx)
	}
	return "", nil
}

func (m *MockRepository) Branches(ctx context.Context) ([]Branch, error) {
	if m.BranchesFunc != nil {
		return m.BranchesFunc(ctx)
	}
	return nil, nil
}
