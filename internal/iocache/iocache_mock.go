package iocache

import (
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSurveyStore implements the StoreManager interface.
func (m *MockStoreManager) GetSurveyStore() contract.SurveyStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SurveyStore)
	return store
}

// MockSurveyStore is a mock implementation of SurveyStore for testing.
type MockSurveyStore struct {
	mock.Mock
}

var _ contract.SurveyStore = &MockSurveyStore{} // Compile-time check

// RecordRun implements the SurveyStore interface.
func (m *MockSurveyStore) RecordRun(result schema.SurveyResult) (int64, error) {
	args := m.Called(result)
	return args.Get(0).(int64), args.Error(1)
}

// GetRun implements the SurveyStore interface.
func (m *MockSurveyStore) GetRun(runID int64) (schema.SurveyRunRecord, error) {
	args := m.Called(runID)
	return args.Get(0).(schema.SurveyRunRecord), args.Error(1)
}

// GetLatestRun implements the SurveyStore interface.
func (m *MockSurveyStore) GetLatestRun() (schema.SurveyRunRecord, error) {
	args := m.Called()
	return args.Get(0).(schema.SurveyRunRecord), args.Error(1)
}

// ListRuns implements the SurveyStore interface.
func (m *MockSurveyStore) ListRuns(limit int) ([]schema.SurveyRunRecord, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.SurveyRunRecord)
	return runs, args.Error(1)
}

// GetRunAnswers implements the SurveyStore interface.
func (m *MockSurveyStore) GetRunAnswers(runID int64) ([]schema.AnswerRecord, error) {
	args := m.Called(runID)
	answers, _ := args.Get(0).([]schema.AnswerRecord)
	return answers, args.Error(1)
}

// GetAllRuns implements the SurveyStore interface.
func (m *MockSurveyStore) GetAllRuns() ([]schema.SurveyRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.SurveyRunRecord)
	return runs, args.Error(1)
}

// GetAllAnswers implements the SurveyStore interface.
func (m *MockSurveyStore) GetAllAnswers() ([]schema.AnswerRecord, error) {
	args := m.Called()
	answers, _ := args.Get(0).([]schema.AnswerRecord)
	return answers, args.Error(1)
}

// AppendChatMessage implements the SurveyStore interface.
func (m *MockSurveyStore) AppendChatMessage(runID int64, msg schema.ChatMessage) (int64, error) {
	args := m.Called(runID, msg)
	return args.Get(0).(int64), args.Error(1)
}

// GetChatHistory implements the SurveyStore interface.
func (m *MockSurveyStore) GetChatHistory(runID int64) ([]schema.ChatMessageRecord, error) {
	args := m.Called(runID)
	msgs, _ := args.Get(0).([]schema.ChatMessageRecord)
	return msgs, args.Error(1)
}

// GetStatus implements the SurveyStore interface.
func (m *MockSurveyStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the SurveyStore interface.
func (m *MockSurveyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
