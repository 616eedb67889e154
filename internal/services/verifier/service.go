package verifier

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/domain"
)

// Service checks provider presence and key-length policy.
type Service struct {
	registry domain.ProviderRegistry
	policy   domain.KeyLengthPolicy
	logger   *logrus.Entry
	now      func() time.Time
}

// New returns a verifier backed by the given registry and policy.
func New(registry domain.ProviderRegistry, policy domain.KeyLengthPolicy, logger *logrus.Entry) *Service {
	return &Service{
		registry: registry,
		policy:   policy,
		logger:   logger,
		now:      time.Now,
	}
}

// IsProviderInstalled reports whether the alternate provider is registered.
func (s *Service) IsProviderInstalled() bool {
	ok, _ := s.providerInstalled()
	return ok
}

func (s *Service) providerInstalled() (bool, string) {
	if err := s.registry.Installed(domain.AlternateProvider); err != nil {
		s.logger.WithError(err).Errorf("Unable to find provider (%s)", domain.AlternateProvider)
		return false, err.Error()
	}
	return true, ""
}

// IsUnlimitedStrength reports whether the reference algorithm may use keys
// longer than the minimum threshold.
func (s *Service) IsUnlimitedStrength() bool {
	ok, _ := s.unlimitedStrength()
	return ok
}

func (s *Service) unlimitedStrength() (bool, string) {
	maximum, err := s.policy.MaxAllowedKeyLength(domain.ReferenceAlgorithm)
	if err != nil {
		s.logger.WithError(err).Error("Unable to query key-length policy")
		return false, err.Error()
	}
	if s.logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.Debugf("System maximum allowed key length (%s): %d", domain.ReferenceAlgorithm, maximum)
	}
	if maximum > domain.MinimumKeyLength {
		return true, ""
	}
	return false, fmt.Sprintf("maximum allowed key length for %s is %d, want more than %d",
		domain.ReferenceAlgorithm, maximum, domain.MinimumKeyLength)
}

// AssertSecureSystem returns nil only when both checks pass. Both checks are
// always evaluated; the error names the first failing one.
func (s *Service) AssertSecureSystem() error {
	_, err := s.Verify()
	return err
}

// Report runs both checks and describes the registered providers.
func (s *Service) Report() domain.Report {
	return s.report(s.evaluate())
}

// Verify runs both checks once and returns the report together with the
// assertion outcome.
func (s *Service) Verify() (domain.Report, error) {
	if s.logger.Logger.IsLevelEnabled(logrus.InfoLevel) {
		s.logger.Info("Security Verifier : Verifying")
	}

	checks := s.evaluate()
	r := s.report(checks)
	for _, c := range checks {
		if !c.Passed {
			return r, &domain.AssertionError{Check: c.Name}
		}
	}
	return r, nil
}

// evaluate runs the provider check then the strength check.
func (s *Service) evaluate() []domain.CheckResult {
	providerOK, providerDetail := s.providerInstalled()
	strengthOK, strengthDetail := s.unlimitedStrength()
	return []domain.CheckResult{
		{Name: domain.CheckProviderInstalled, Passed: providerOK, Detail: providerDetail},
		{Name: domain.CheckUnlimitedStrength, Passed: strengthOK, Detail: strengthDetail},
	}
}

func (s *Service) report(checks []domain.CheckResult) domain.Report {
	host, err := os.Hostname()
	if err != nil {
		s.logger.WithError(err).Warn("could not resolve hostname")
	}

	secure := true
	for _, c := range checks {
		secure = secure && c.Passed
	}
	return domain.Report{
		Host:        host,
		GeneratedAt: s.now().UTC(),
		Checks:      checks,
		Providers:   s.registry.List(),
		Secure:      secure,
	}
}

var _ domain.VerifierService = (*Service)(nil)
