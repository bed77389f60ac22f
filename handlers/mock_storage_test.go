package handlers

import "context"

type mockStorage struct {
	DeleteFileFn    func(objectPath string) error
	DeleteFileCalls []string
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteFileCalls: []string{},
	}
}

func (m *mockStorage) Bucket() string { return "test-bucket" }

func (m *mockStorage) DeleteFile(ctx context.Context, objectPath string) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, objectPath)
	if m.DeleteFileFn != nil {
		return m.DeleteFileFn(objectPath)
	}
	return nil
}
