package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRunCheck_Valid(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{"M:OUTTMP[0:3]@P,1S"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	if !strings.Contains(stdout.String(), "OK") {
		t.Errorf("expected OK in output, got: %s", stdout.String())
	}
}

func TestRunCheck_Invalid(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{"M:OUTTMP[3:"}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d (validation failed), got %d", exitValidation, exitCode)
	}

	if !strings.Contains(stdout.String(), "FAIL") {
		t.Errorf("expected FAIL in output, got: %s", stdout.String())
	}
}

func TestRunCheck_Mixed(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{"M:OUTTMP", "!bogus", "B_VIMIN@I"}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}

	if strings.Count(stdout.String(), "OK") != 2 {
		t.Errorf("expected two OK results, got: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "1 of 3 requests invalid") {
		t.Errorf("expected failure summary, got: %s", stdout.String())
	}
}

func TestRunCheck_NoInputs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}

	if !strings.Contains(stderr.String(), "no request strings given") {
		t.Errorf("expected 'no request strings given' in stderr, got: %s", stderr.String())
	}
}

func TestRunCheck_Quiet(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{"-q", "M:OUTTMP[3:"}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout in quiet mode, got: %s", stdout.String())
	}
}

func TestRunCheck_InputFile(t *testing.T) {
	path := writeTempFile(t, "requests.txt", strings.Join([]string{
		"# nightly scan list",
		"M:OUTTMP@P,1S",
		"",
		"G:AMANDA.SETTING",
	}, "\n"))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCheck([]string{"-f", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stdout: %s", stdout.String())
	}

	if strings.Count(stdout.String(), "OK") != 2 {
		t.Errorf("expected two OK results, got: %s", stdout.String())
	}
}

func TestRunCanon_Output(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCanon([]string{"M:OUTTMP[0:3]@P,1S"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	want := "M:OUTTMP.READING[0:3].SCALED@P,1000000U,TRUE\n"
	if stdout.String() != want {
		t.Errorf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunCanon_Invalid(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCanon([]string{"M:OUTTMP@X"}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}
	if !strings.Contains(stderr.String(), "M:OUTTMP@X") {
		t.Errorf("expected failing input in stderr, got: %s", stderr.String())
	}
}

func TestRunCanon_Config(t *testing.T) {
	cfgPath := writeTempFile(t, "drf.yaml", "periodic_immediate: false\n")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunCanon([]string{"-config", cfgPath, "M:OUTTMP@P,1S"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	want := "M:OUTTMP.READING.SCALED@P,1000000U,FALSE\n"
	if stdout.String() != want {
		t.Errorf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunShow_TextFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"M:OUTTMP[0:3]@P,1S"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "canonical:") {
		t.Errorf("expected 'canonical:' in output, got: %s", output)
	}
	if !strings.Contains(output, "device:    M:OUTTMP") {
		t.Errorf("expected device line in output, got: %s", output)
	}
	if !strings.Contains(output, "property:  READING.SCALED") {
		t.Errorf("expected property line in output, got: %s", output)
	}
}

func TestRunShow_JSONFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"-format", "json", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}

	if !strings.Contains(stdout.String(), `"canonical"`) {
		t.Errorf("expected JSON with 'canonical' field, got: %s", stdout.String())
	}
}

func TestRunShow_YAMLFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"-format", "yaml", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}

	if !strings.Contains(stdout.String(), "canonical:") {
		t.Errorf("expected YAML with 'canonical:' field, got: %s", stdout.String())
	}
}

func TestRunShow_FormatFromConfig(t *testing.T) {
	cfgPath := writeTempFile(t, "drf.yaml", "format: json\n")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"-config", cfgPath, "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}

	if !strings.HasPrefix(strings.TrimSpace(stdout.String()), "[") {
		t.Errorf("expected JSON array output, got: %s", stdout.String())
	}
}

func TestRunShow_UnknownFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"-format", "xml", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRunShow_ParseError(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunShow([]string{"M:OUTTMP[3:"}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}
	if !strings.Contains(stdout.String(), "error:") {
		t.Errorf("expected error line in output, got: %s", stdout.String())
	}
}

func TestRunExport_JSONL(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunExport([]string{"M:OUTTMP", "B_VIMIN@I"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two JSONL lines, got %d: %s", len(lines), stdout.String())
	}
	if !strings.Contains(lines[0], `"canonical":"M:OUTTMP.READING.SCALED"`) {
		t.Errorf("expected canonical in first line, got: %s", lines[0])
	}
}

func TestRunExport_CSV(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunExport([]string{"-format", "csv", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}

	output := stdout.String()
	if !strings.HasPrefix(output, "id,time,input,canonical,device,property,field,range,event,error") {
		t.Errorf("expected CSV header, got: %s", output)
	}
	if !strings.Contains(output, "M:OUTTMP.READING.SCALED") {
		t.Errorf("expected canonical in CSV row, got: %s", output)
	}
}

func TestRunExport_CBOR(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "records.cbor")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunExport([]string{"-format", "cbor", "-o", outPath, "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("failed to stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty record stream file")
	}
}

func TestRunExport_CBORRequiresOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunExport([]string{"-format", "cbor", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "requires -o") {
		t.Errorf("expected -o requirement in stderr, got: %s", stderr.String())
	}
}

func TestRunExport_UnknownFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunExport([]string{"-format", "toml", "M:OUTTMP"}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReadInputs_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeTempFile(t, "list.txt", "# header\n\nM:OUTTMP\n  \nB_VIMIN\n")

	inputs, err := readInputs(path, []string{"I:H52"})
	if err != nil {
		t.Fatalf("readInputs: %v", err)
	}

	want := []string{"M:OUTTMP", "B_VIMIN", "I:H52"}
	if len(inputs) != len(want) {
		t.Fatalf("expected %d inputs, got %d: %v", len(want), len(inputs), inputs)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("input %d: expected %q, got %q", i, want[i], inputs[i])
		}
	}
}
