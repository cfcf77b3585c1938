package services

import (
	"fmt"
	"strings"
	"testing"

	"assethook/app/models"
	"assethook/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Setting{}))
	r := repo.NewSettingsRepository(gdb)
	require.NoError(t, r.EnsureDefaults())
	return NewSettingsService(r)
}

func fullSettings() map[string]string {
	return map[string]string{
		"jsshost":      "jss.example.com",
		"jss_path":     "/jamf",
		"jss_port":     "8443",
		"jss_username": "api",
		"jss_password": "secret",
		"set_name":     "false",
	}
}

func TestSaveAddsHTTPSScheme(t *testing.T) {
	s := newSettingsService(t)
	require.NoError(t, s.Save(fullSettings()))

	values, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://jss.example.com", values["jsshost"])
}

func TestSaveDoesNotMutateInput(t *testing.T) {
	s := newSettingsService(t)
	in := fullSettings()
	require.NoError(t, s.Save(in))

	assert.Equal(t, "jss.example.com", in["jsshost"], "scheme rewrite must stay internal")
}

func TestSaveKeepsExistingScheme(t *testing.T) {
	s := newSettingsService(t)
	in := fullSettings()
	in["jsshost"] = "http://jss.internal"
	require.NoError(t, s.Save(in))

	values, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://jss.internal", values["jsshost"])
}

func TestSaveIsWholesale(t *testing.T) {
	s := newSettingsService(t)
	require.NoError(t, s.Save(fullSettings()))

	in := fullSettings()
	in["jss_username"] = "other"
	require.NoError(t, s.Save(in))

	values, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "other", values["jss_username"])
	assert.Len(t, values, len(repo.SettingNames))
}

func TestResolveRejectsMissingValues(t *testing.T) {
	for _, name := range repo.SettingNames {
		values := fullSettings()
		values["jsshost"] = "https://jss.example.com"
		values[name] = ""
		_, _, ok := Resolve(values)
		assert.False(t, ok, "expected incomplete settings with empty %s", name)
	}
}

func TestResolveSetNameParsing(t *testing.T) {
	values := fullSettings()
	values["jsshost"] = "https://jss.example.com"

	values["set_name"] = "True"
	_, setName, ok := Resolve(values)
	require.True(t, ok)
	assert.True(t, setName)

	values["set_name"] = "false"
	_, setName, ok = Resolve(values)
	require.True(t, ok)
	assert.False(t, setName)
}

func TestResolveBuildsConnection(t *testing.T) {
	values := fullSettings()
	values["jsshost"] = "https://jss.example.com"
	conn, _, ok := Resolve(values)
	require.True(t, ok)
	assert.Equal(t, "https://jss.example.com:8443/jamf", conn.BaseURL())
	assert.Equal(t, "api", conn.Username)
}
