package idpkg

import "testing"

func TestIsBankingAccountID(t *testing.T) {
	valid := []string{"ACC1234567890", "BANK1234567890123456", "ACC5555666677"}
	invalid := []string{"acc123", "123456789", "ABC!@#$%^&*()", "A", "", "ACC12345678901234567890"}

	for _, id := range valid {
		if !IsBankingAccountID(id) {
			t.Errorf("IsBankingAccountID(%q) = false, want true", id)
		}
	}

	for _, id := range invalid {
		if IsBankingAccountID(id) {
			t.Errorf("IsBankingAccountID(%q) = true, want false", id)
		}
	}
}

func TestIsBrokerageAccountID(t *testing.T) {
	valid := []string{"BRK12345678", "BRK1A2B3C4D5", "BRKABCDEFGH1234"}
	invalid := []string{"brk12345678", "ABC12345678", "BRK123", "", "BRK1234567890123"}

	for _, id := range valid {
		if !IsBrokerageAccountID(id) {
			t.Errorf("IsBrokerageAccountID(%q) = false, want true", id)
		}
	}

	for _, id := range invalid {
		if IsBrokerageAccountID(id) {
			t.Errorf("IsBrokerageAccountID(%q) = true, want false", id)
		}
	}
}

func TestIsUserID(t *testing.T) {
	valid := []string{"USER1234", "ABC12345DEFG", "A1B2C3D4"}
	invalid := []string{"user123", "ABC!DEF", "AB12345", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", ""}

	for _, id := range valid {
		if !IsUserID(id) {
			t.Errorf("IsUserID(%q) = false, want true", id)
		}
	}

	for _, id := range invalid {
		if IsUserID(id) {
			t.Errorf("IsUserID(%q) = true, want false", id)
		}
	}
}
