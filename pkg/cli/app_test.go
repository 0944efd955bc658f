package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// stubExiter keeps exit-coded errors from terminating the test binary and
// records the exit code for assertions.
func stubExiter(t *testing.T) *int {
	t.Helper()
	var code int
	prev := cli.OsExiter
	cli.OsExiter = func(c int) { code = c }
	t.Cleanup(func() { cli.OsExiter = prev })
	return &code
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	return New().Run(context.Background(), append([]string{"netschema"}, args...))
}

func TestValidateCommand_ValidPayload(t *testing.T) {
	stubExiter(t)
	payload := writeTemp(t, "addr.yaml", "name: web-server\nfolder: Shared\nip_netmask: 10.0.0.1/32\n")
	out := filepath.Join(t.TempDir(), "out.json")

	err := runApp(t, "--format", "json", "--output", out,
		"validate", "--schema", "address.create", payload)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var results []fileResult
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Nil(t, results[0].Report)
}

func TestValidateCommand_InvalidPayloadExitsNonZero(t *testing.T) {
	code := stubExiter(t)
	payload := writeTemp(t, "addr.yaml", "name: web-server\nfolder: Shared\n")
	out := filepath.Join(t.TempDir(), "out.json")

	err := runApp(t, "--format", "json", "--output", out,
		"validate", "--schema", "address.create", payload)
	require.Error(t, err)
	assert.Equal(t, 1, *code)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var results []fileResult
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	require.NotNil(t, results[0].Report)
	assert.NotEmpty(t, results[0].Report.Violations)
}

func TestValidateCommand_UnknownSchema(t *testing.T) {
	stubExiter(t)
	payload := writeTemp(t, "addr.yaml", "name: web-server\n")

	err := runApp(t, "validate", "--schema", "no-such-schema", payload)
	require.Error(t, err)
}

func TestValidateCommand_UnknownFormat(t *testing.T) {
	stubExiter(t)
	payload := writeTemp(t, "addr.yaml", "name: web-server\n")

	err := runApp(t, "--format", "xml", "validate", "--schema", "address.create", payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCanonCommand_EmitsWireNames(t *testing.T) {
	stubExiter(t)
	payload := writeTemp(t, "dns.yaml",
		"name: corp-dns\nfolder: Shared\ndomain_servers:\n  - ns1.corp.example\n")
	out := filepath.Join(t.TempDir(), "canon.json")

	err := runApp(t, "--format", "json", "--output", out,
		"canon", "--schema", "dns-server-profile.create", payload)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var canonical map[string]any
	require.NoError(t, json.Unmarshal(raw, &canonical))
	assert.Contains(t, canonical, "domain-servers")
	assert.NotContains(t, canonical, "domain_servers")
}

func TestSchemasCommand_List(t *testing.T) {
	stubExiter(t)
	out := filepath.Join(t.TempDir(), "schemas.yaml")

	err := runApp(t, "--output", out, "schemas")
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var names []string
	require.NoError(t, yaml.Unmarshal(raw, &names))
	assert.Contains(t, names, "address.create")
	assert.Contains(t, names, "nat-rule.update")
}

func TestSchemasCommand_Describe(t *testing.T) {
	stubExiter(t)
	out := filepath.Join(t.TempDir(), "schema.json")

	err := runApp(t, "--format", "json", "--output", out, "schemas", "address.create")
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var info schemaInfo
	require.NoError(t, json.Unmarshal(raw, &info))
	assert.Equal(t, "address.create", info.Name)
	assert.Equal(t, "forbid", info.Policy)
	assert.NotEmpty(t, info.Fields)
	assert.NotEmpty(t, info.Groups)
}
