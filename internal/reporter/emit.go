package reporter

import (
	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
	"github.com/ethanolivertroy/bundle-checker/internal/validator"
)

// Logger is the set of logging primitives a run reports through.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Run validates raw module paths against cfg and reports the verdict through
// logger. It is the entry point shared by the CLI and the build hook.
func Run(logger Logger, modulePaths []string, cfg models.ValidationConfig) models.Outcome {
	_, outcome := Evaluate(logger, normalize.Paths(modulePaths), cfg)
	return outcome
}

// Evaluate is Run for already normalized paths. It also returns the result so
// callers can render a report document from it.
func Evaluate(logger Logger, paths []models.ModulePath, cfg models.ValidationConfig) (models.ValidationResult, models.Outcome) {
	if err := validator.CheckConfig(cfg); err != nil {
		return models.ValidationResult{}, Fail(logger, err)
	}

	logger.Info(msgProcessingStarted(),
		"modules", len(paths),
		"mandatory", normalize.DecodeAll(cfg.Mandatory),
		"disallowed", normalize.DecodeAll(cfg.Disallowed),
		"failOnInvalid", cfg.FailOnInvalid,
	)
	for _, p := range paths {
		logger.Debug("module", "path", normalize.Decode(string(p)))
	}

	result := validator.Validate(paths, cfg.Mandatory, cfg.Disallowed)
	return result, Emit(logger, result, cfg.FailOnInvalid)
}

// Emit applies the outcome policy to result:
//
//   - valid: success message, StatusSuccess
//   - invalid and !failOnInvalid: warning, failure message, StatusWarning
//   - invalid and failOnInvalid: error, failure message, StatusFailure
func Emit(logger Logger, result models.ValidationResult, failOnInvalid bool) models.Outcome {
	if result.Valid() {
		logger.Info(msgFinished(models.StatusSuccess))
		return models.Outcome{Status: models.StatusSuccess}
	}

	msg := ViolationMessage(result)
	if !failOnInvalid {
		logger.Warn(msg)
		logger.Info(msgFinished(models.StatusWarning))
		return models.Outcome{Status: models.StatusWarning, Message: msg}
	}

	logger.Error(msg)
	logger.Info(msgFinished(models.StatusFailure))
	return models.Outcome{Status: models.StatusFailure, Message: msg}
}

// Fail reports a fatal error. Configuration errors take this path whatever
// failOnInvalid says.
func Fail(logger Logger, err error) models.Outcome {
	logger.Error(err.Error())
	logger.Info(msgFinished(models.StatusFailure))
	return models.Outcome{Status: models.StatusFailure, Message: err.Error()}
}

// OutputFailed reports an error that happened after the verdict was logged,
// such as a report that could not be written. The run fails but no second
// finished message is logged.
func OutputFailed(logger Logger, err error) models.Outcome {
	logger.Error(err.Error())
	return models.Outcome{Status: models.StatusFailure, Message: err.Error()}
}
