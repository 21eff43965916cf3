package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/convforge/convcast/pkg/errors"
)

func TestTestLoggerCapture(t *testing.T) {
	logger, buf := NewTestLogger(LevelInfo)

	logger.Debug("should be suppressed")
	logger.Info("fit started", SamplesKey, 400, WindowLengthKey, 10)

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("debug message leaked through LevelInfo logger")
	}
	if !strings.Contains(out, "fit started") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "data.samples=400") {
		t.Errorf("structured field missing: %q", out)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buf := NewTestLogger(LevelDebug)
	child := logger.With(ModelNameKey, "Conv1DRegressor")

	child.Info("predicting", OperationKey, "predict")

	out := buf.String()
	if !strings.Contains(out, "model.name=Conv1DRegressor") {
		t.Errorf("inherited field missing: %q", out)
	}
	if !strings.Contains(out, "ml.operation=predict") {
		t.Errorf("call-site field missing: %q", out)
	}
}

func TestZerologWarnBridge(t *testing.T) {
	var buf bytes.Buffer
	InstallZerologWarnBridge(&buf)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewConvergenceWarning("Conv1DRegressor", 20, 2.5))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("warning output is not JSON: %v (%q)", err, buf.String())
	}
	warning, ok := record["warning"].(map[string]any)
	if !ok {
		t.Fatalf("structured warning object missing: %v", record)
	}
	if warning["type"] != "ConvergenceWarning" {
		t.Errorf("warning type = %v, want ConvergenceWarning", warning["type"])
	}
	if warning["epochs"] != float64(20) {
		t.Errorf("epochs = %v, want 20", warning["epochs"])
	}
}
