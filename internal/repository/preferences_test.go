package repository

import (
	"testing"

	"oneportfolio/internal/models"
	"oneportfolio/internal/testutil"
)

func TestPreferencesSetGet(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.Set(models.PrefBaseCurrency, "EUR"))

		value, ok, err := repo.Get(models.PrefBaseCurrency)
		testutil.AssertNoError(t, err)
		if !ok {
			t.Fatal("expected key to be present")
		}
		if value != "EUR" {
			t.Errorf("expected EUR, got %s", value)
		}
	})

	t.Run("missing_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		value, ok, err := repo.Get(models.PrefBaseCurrency)
		testutil.AssertNoError(t, err)
		if ok {
			t.Errorf("expected key to be absent, got %q", value)
		}
	})

	t.Run("set_replaces_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.Set(models.PrefBaseCurrency, "USD"))
		testutil.AssertNoError(t, repo.Set(models.PrefBaseCurrency, "SGD"))

		value, ok, err := repo.Get(models.PrefBaseCurrency)
		testutil.AssertNoError(t, err)
		if !ok || value != "SGD" {
			t.Errorf("expected SGD after overwrite, got %q (present=%v)", value, ok)
		}

		all, err := repo.GetAll()
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Errorf("expected a single row after overwrite, got %d", len(all))
		}
	})
}

func TestPreferencesDelete(t *testing.T) {
	t.Run("removes_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.Set(models.PrefAutoRefreshEnabled, "true"))
		testutil.AssertNoError(t, repo.Delete(models.PrefAutoRefreshEnabled))

		_, ok, err := repo.Get(models.PrefAutoRefreshEnabled)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected key to be gone after delete")
		}
	})

	t.Run("absent_key_is_not_an_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.Delete(models.PrefBaseCurrency))
	})
}

func TestPreferencesGetAllDeleteAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewPreferencesRepository(db)

	testutil.AssertNoError(t, repo.Set(models.PrefHasCompletedOnboarding, "true"))
	testutil.AssertNoError(t, repo.Set(models.PrefBaseCurrency, "USD"))

	all, err := repo.GetAll()
	testutil.AssertNoError(t, err)
	if len(all) != 2 {
		t.Fatalf("expected 2 preferences, got %d", len(all))
	}
	if all[models.PrefBaseCurrency] != "USD" {
		t.Errorf("expected USD, got %s", all[models.PrefBaseCurrency])
	}

	testutil.AssertNoError(t, repo.DeleteAll())

	all, err = repo.GetAll()
	testutil.AssertNoError(t, err)
	if len(all) != 0 {
		t.Errorf("expected no preferences after DeleteAll, got %d", len(all))
	}
}

func TestPreferenceDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewPreferencesRepository(db)

	t.Run("onboarding_defaults_false", func(t *testing.T) {
		done, err := repo.HasCompletedOnboarding()
		testutil.AssertNoError(t, err)
		if done {
			t.Error("expected onboarding to default to false")
		}
	})

	t.Run("notifications_default_true", func(t *testing.T) {
		enabled, err := repo.NotificationsEnabled()
		testutil.AssertNoError(t, err)
		if !enabled {
			t.Error("expected notifications to default to true")
		}
	})

	t.Run("auto_refresh_defaults_false", func(t *testing.T) {
		enabled, err := repo.AutoRefreshEnabled()
		testutil.AssertNoError(t, err)
		if enabled {
			t.Error("expected auto-refresh to default to false")
		}
	})

	t.Run("base_currency_defaults_unset", func(t *testing.T) {
		_, ok, err := repo.BaseCurrency()
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected base currency to be unset")
		}
	})
}

func TestTypedPreferences(t *testing.T) {
	t.Run("onboarding_flag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.SetHasCompletedOnboarding(true))
		done, err := repo.HasCompletedOnboarding()
		testutil.AssertNoError(t, err)
		if !done {
			t.Error("expected onboarding flag to be true")
		}

		testutil.AssertNoError(t, repo.SetHasCompletedOnboarding(false))
		done, err = repo.HasCompletedOnboarding()
		testutil.AssertNoError(t, err)
		if done {
			t.Error("expected onboarding flag to be false")
		}
	})

	t.Run("notifications_flag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.SetNotificationsEnabled(false))
		enabled, err := repo.NotificationsEnabled()
		testutil.AssertNoError(t, err)
		if enabled {
			t.Error("expected notifications to be disabled")
		}
	})

	t.Run("auto_refresh_flag", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.SetAutoRefreshEnabled(true))
		enabled, err := repo.AutoRefreshEnabled()
		testutil.AssertNoError(t, err)
		if !enabled {
			t.Error("expected auto-refresh to be enabled")
		}
	})

	t.Run("base_currency_valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		testutil.AssertNoError(t, repo.SetBaseCurrency("USD"))
		currency, ok, err := repo.BaseCurrency()
		testutil.AssertNoError(t, err)
		if !ok || currency != "USD" {
			t.Errorf("expected USD, got %q (present=%v)", currency, ok)
		}
	})

	t.Run("base_currency_invalid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := NewPreferencesRepository(db)

		err := repo.SetBaseCurrency("DOLLARS")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		err = repo.SetBaseCurrency("usd")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, ok, getErr := repo.BaseCurrency()
		testutil.AssertNoError(t, getErr)
		if ok {
			t.Error("expected no currency stored after rejected writes")
		}
	})
}
