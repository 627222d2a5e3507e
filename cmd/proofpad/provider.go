package main

import (
	"context"
	"fmt"

	"proofpad"
	"proofpad/deepseek"
	"proofpad/gemini"
)

// resolveProvider selects and constructs the answering backend. All env
// var values are passed in as parameters; env is only read in main().
func resolveProvider(ctx context.Context, providerFlag, apiKeyFlag, baseURL, deepseekEnvKey, geminiEnvKey string) (proofpad.Answerer, error) {
	provider := providerFlag

	// Auto-detect from env vars if no flag.
	if provider == "" {
		hasDeepSeek := deepseekEnvKey != ""
		hasGemini := geminiEnvKey != ""
		switch {
		case hasDeepSeek && hasGemini:
			return nil, fmt.Errorf("multiple API keys found (DEEPSEEK_API_KEY, GEMINI_API_KEY): use -provider flag to select")
		case hasDeepSeek:
			provider = "deepseek"
		case hasGemini:
			provider = "gemini"
		default:
			return nil, fmt.Errorf("no API key found: set DEEPSEEK_API_KEY or GEMINI_API_KEY (or use -provider and -api-key flags)")
		}
	}

	// Resolve API key: explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "deepseek":
		if key == "" {
			key = deepseekEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY not set (use -api-key flag or environment variable)")
		}
		var opts []deepseek.Option
		if baseURL != "" {
			opts = append(opts, deepseek.WithBaseURL(baseURL))
		}
		return deepseek.New(key, opts...), nil
	case "gemini":
		if key == "" {
			key = geminiEnvKey
		}
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set (use -api-key flag or environment variable)")
		}
		client, err := gemini.New(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: must be \"deepseek\" or \"gemini\"", provider)
	}
}
