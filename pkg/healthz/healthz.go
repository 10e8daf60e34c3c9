package healthz

import (
	"fmt"
	"net/http"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apiserver/pkg/server/healthz"
)

var (
	checkers      []healthz.HealthChecker
	readyCheckers []healthz.HealthChecker
)

// RegisterChecker adds a liveness checker.
func RegisterChecker(checker healthz.HealthChecker) {
	checkers = append(checkers, checker)
}

// RegisterReadyChecker adds a readiness checker.
func RegisterReadyChecker(checker healthz.HealthChecker) {
	readyCheckers = append(readyCheckers, checker)
}

// Handler ...
func Handler(w http.ResponseWriter, req *http.Request) {
	serve(w, req, checkers)
}

// ReadyHandler ...
func ReadyHandler(w http.ResponseWriter, req *http.Request) {
	serve(w, req, readyCheckers)
}

func serve(w http.ResponseWriter, req *http.Request, toCheck []healthz.HealthChecker) {
	var errs []error
	for _, checker := range toCheck {
		if err := checker.Check(req); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", checker.Name(), err))
		}
	}

	if len(errs) > 0 {
		http.Error(w, utilerrors.NewAggregate(errs).Error(), http.StatusServiceUnavailable)
		return
	}

	fmt.Fprint(w, "ok")
}
