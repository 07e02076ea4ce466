package cli

import (
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
)

// hint returns a remedy for err, or "" when there is nothing to suggest.
func hint(err error) string {
	if ce, ok := docerrors.AsConfigError(err); ok && ce.Path != "" {
		return "fix " + ce.Path + " or run 'actiondoc init --force' to recreate it"
	}
	if me, ok := docerrors.AsMarkerError(err); ok {
		if docerrors.IsMarkerMissing(err) {
			return "add the missing marker " + me.Marker + " to the README and run again"
		}
		if docerrors.IsInvalid(err) {
			return "each marker must appear once and the " + me.Region + " region must not overlap the other"
		}
	}
	switch {
	case docerrors.IsNotFound(err):
		return "run 'actiondoc init' to create the configuration and README markers"
	case docerrors.IsIO(err):
		return "check that the files are readable and the README is writable"
	}
	return ""
}

// printHint prints the remedy for err, if any.
func printHint(p *printer, err error) {
	if h := hint(err); h != "" {
		p.Error("%s", h)
	}
}
