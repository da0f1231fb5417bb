package backoffice

import (
	"context"
	"testing"

	"github.com/cccteam/backoffice/featuretypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var _ FeatureManager = &MockFeatureManager{} // Verify that MockFeatureManager implements the interface

// MockFeatureManager is a mock implementation of the FeatureManager interface.
type MockFeatureManager struct {
	mock.Mock
}

func (m *MockFeatureManager) AdminFeatureAccess(ctx context.Context, token, adminID string) (featuretypes.FeatureAccess, error) {
	args := m.Called(ctx, token, adminID)
	return args.Get(0).(featuretypes.FeatureAccess), args.Error(1)
}

func (m *MockFeatureManager) EnableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error {
	args := m.Called(ctx, token, adminID, features)
	return args.Error(0)
}

func (m *MockFeatureManager) DisableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error {
	args := m.Called(ctx, token, adminID, features)
	return args.Error(0)
}

func TestFeatureEditor_SetFeatures(t *testing.T) {
	ctx := context.Background()
	adminID := "adm-7"
	token := "token-1"

	tests := []struct {
		name            string
		desired         []featuretypes.Feature
		mockFeatureMgr  func(m *MockFeatureManager)
		expectedHasFeat bool
		expectedErr     bool
	}{
		{
			name:    "grant new features, admin has none",
			desired: []featuretypes.Feature{featuretypes.KYCReview, featuretypes.CanManageKYC},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{}, nil).Once()
				m.On("EnableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.KYCReview, featuretypes.CanManageKYC}).Return(nil).Once()
			},
			expectedHasFeat: true,
		},
		{
			name:    "desired already granted, no changes",
			desired: []featuretypes.Feature{featuretypes.Dashboard},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{featuretypes.Dashboard: true}, nil).Once()
				// No EnableFeatures or DisableFeatures should be called
			},
			expectedHasFeat: true,
		},
		{
			name:    "revoke surplus, grant missing",
			desired: []featuretypes.Feature{featuretypes.UserManagement, featuretypes.KYCReview},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{
					featuretypes.Dashboard:      true,
					featuretypes.UserManagement: true,
				}, nil).Once()
				m.On("EnableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.KYCReview}).Return(nil).Once()
				m.On("DisableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.Dashboard}).Return(nil).Once()
			},
			expectedHasFeat: true,
		},
		{
			name:    "unknown feature names are skipped",
			desired: []featuretypes.Feature{featuretypes.Banners, "notAFeature"},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{}, nil).Once()
				m.On("EnableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.Banners}).Return(nil).Once()
			},
			expectedHasFeat: true,
		},
		{
			name:    "flags stored false are not treated as granted",
			desired: []featuretypes.Feature{featuretypes.Banners},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{
					featuretypes.Banners: false,
				}, nil).Once()
				m.On("EnableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.Banners}).Return(nil).Once()
			},
			expectedHasFeat: true,
		},
		{
			name:    "empty desired set revokes everything",
			desired: []featuretypes.Feature{},
			mockFeatureMgr: func(m *MockFeatureManager) {
				m.On("AdminFeatureAccess", mock.Anything, token, adminID).Return(featuretypes.FeatureAccess{
					featuretypes.Dashboard: true,
					featuretypes.Settings:  true,
				}, nil).Once()
				m.On("DisableFeatures", mock.Anything, token, adminID, []featuretypes.Feature{featuretypes.Dashboard, featuretypes.Settings}).Return(nil).Once()
			},
			expectedHasFeat: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeatureMgr := new(MockFeatureManager)
			tt.mockFeatureMgr(mockFeatureMgr)

			editor := NewFeatureEditor(mockFeatureMgr, sessionWithRole(token, RoleSuperAdmin))
			hasFeature, err := editor.SetFeatures(ctx, adminID, tt.desired)

			assert.Equal(t, tt.expectedHasFeat, hasFeature)
			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockFeatureMgr.AssertExpectations(t)
		})
	}
}

func TestFeatureEditor_SetFeaturesWithoutToken(t *testing.T) {
	mockFeatureMgr := new(MockFeatureManager)

	editor := NewFeatureEditor(mockFeatureMgr, NewSession())
	_, err := editor.SetFeatures(context.Background(), "adm-7", []featuretypes.Feature{featuretypes.Banners})

	assert.Error(t, err)
	mockFeatureMgr.AssertExpectations(t)
}
