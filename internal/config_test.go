package internal_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/rbac-console/internal"
)

var _ = Describe("Config", func() {
	It("ships valid defaults", func() {
		cfg := internal.DefaultConfig()
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Console.IDPolicy).To(Equal("sequential"))
		Expect(cfg.Console.DefaultTab).To(Equal("users"))
	})

	It("collects every invalid section", func() {
		cfg := internal.DefaultConfig()
		cfg.Server.Port = 0
		cfg.Console.IDPolicy = "random"
		cfg.Observability.Logging.Format = "xml"

		err := cfg.Validate()
		Expect(err).To(MatchError(ContainSubstring("server config")))
		Expect(err).To(MatchError(ContainSubstring("console config")))
		Expect(err).To(MatchError(ContainSubstring("logging config")))
	})

	It("rejects an unknown default tab", func() {
		cfg := internal.DefaultConfig()
		cfg.Console.DefaultTab = "audit"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("default_tab")))
	})

	It("falls back to the users tab when default_tab is empty", func() {
		cfg := internal.DefaultConfig()
		cfg.Console.DefaultTab = "  "
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Console.DefaultTab).To(Equal("users"))

		cfg.Console.DefaultTab = "Roles"
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Console.DefaultTab).To(Equal("roles"))
	})

	Describe("LoadConfigFromEnv", func() {
		set := func(key, value string) {
			Expect(os.Setenv(key, value)).To(Succeed())
			DeferCleanup(os.Unsetenv, key)
		}

		It("overrides defaults from the environment", func() {
			set("HTTP_PORT", "9999")
			set("HTTP_READ_TIMEOUT", "20s")
			set("CONSOLE_ID_POLICY", "length")
			set("CONSOLE_SEED", "false")
			set("LOG_FORMAT", "json")

			cfg := internal.LoadConfigFromEnv()
			Expect(cfg.Server.Port).To(Equal(9999))
			Expect(cfg.Server.ReadTimeout).To(Equal(20 * time.Second))
			Expect(cfg.Console.IDPolicy).To(Equal("length"))
			Expect(cfg.Console.Seed).To(BeFalse())
			Expect(cfg.Observability.Logging.Format).To(Equal("json"))
		})

		It("ignores unparsable numbers", func() {
			set("HTTP_PORT", "eighty")
			Expect(internal.LoadConfigFromEnv().Server.Port).To(Equal(8080))
		})
	})
})
