package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ana.souza@example.edu",
		"prof+lab@university.edu.br",
		"a_b-c@sub.domain.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.org",
		"user@",
		"user@domain",
		"user name@domain.org",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	for _, period := range []string{"1º", "5º", "10º"} {
		if !IsValidPeriod(period) {
			t.Errorf("expected %q to be valid", period)
		}
	}
	for _, period := range []string{"", "0º", "11º", "1", "1o"} {
		if IsValidPeriod(period) {
			t.Errorf("expected %q to be invalid", period)
		}
	}
}
