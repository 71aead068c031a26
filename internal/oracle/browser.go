package oracle

// #region imports
import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// #endregion

// #region selectors

// The game UI is Mantine-based; class names carry a build hash, so the
// stable suffix classes are matched.
const (
	questionSelector = "textarea.mantine-Textarea-input"
	questionFallback = "textarea"
	answerSelector   = "blockquote.mantine-Blockquote-root p"
	passwordSelector = "input.mantine-TextInput-input"
	askButton        = `button[type="submit"]`
	submitButtonX    = `//button[.//span[contains(text(), 'Submit')]]`
	continueButtonX  = `//button[.//span[contains(text(), 'Continue')]]`
	levelHeading     = "h1.mantine-Title-root"
)

// #endregion

// #region config

// BrowserConfig configures the automated game channel.
type BrowserConfig struct {
	URL      string
	Headless bool
	Timeout  time.Duration
}

// #endregion

// #region browser

// Browser drives the game page directly: it types questions into the chat
// box, reads the oracle's blockquote reply, and submits password guesses.
type Browser struct {
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
	level   int
}

// NewBrowser launches a browser, opens the game, and waits for it to load.
func NewBrowser(cfg BrowserConfig) (*Browser, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	u, err := launcher.New().Headless(cfg.Headless).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: cfg.URL})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("open game page: %w", err)
	}
	if err := page.Timeout(cfg.Timeout).WaitLoad(); err != nil {
		browser.Close()
		return nil, fmt.Errorf("wait for game page: %w", err)
	}

	b := &Browser{browser: browser, page: page, timeout: cfg.Timeout, level: 1}
	if lvl, err := b.currentLevel(); err == nil {
		b.level = lvl
	}
	return b, nil
}

// Close shuts the browser down.
func (b *Browser) Close() error {
	return b.browser.Close()
}

// Level returns the level the channel believes it is on.
func (b *Browser) Level() int { return b.level }

// #endregion

// #region ask

// Ask types the question into the chat box, clicks ask, and reads the
// reply blockquote.
func (b *Browser) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	page := b.page.Timeout(b.timeout)

	field, err := page.Element(questionSelector)
	if err != nil {
		field, err = page.Element(questionFallback)
		if err != nil {
			return "", fmt.Errorf("question field: %w", err)
		}
	}
	if err := field.SelectAllText(); err != nil {
		return "", fmt.Errorf("clear question field: %w", err)
	}
	if err := field.Input(question); err != nil {
		return "", fmt.Errorf("type question: %w", err)
	}

	button, err := page.Element(askButton)
	if err != nil {
		return "", fmt.Errorf("ask button: %w", err)
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return "", fmt.Errorf("click ask: %w", err)
	}

	time.Sleep(3 * time.Second) // let the reply render

	reply, err := page.Element(answerSelector)
	if err != nil {
		return "", fmt.Errorf("answer element: %w", err)
	}
	text, err := reply.Text()
	if err != nil {
		return "", fmt.Errorf("answer text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// #endregion

// #region submit

// Submit types the candidate into the password box and reports whether the
// game advanced: either a Continue button appeared or the level heading
// moved forward.
func (b *Browser) Submit(ctx context.Context, candidate string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	page := b.page.Timeout(b.timeout)

	field, err := page.Element(passwordSelector)
	if err != nil {
		return false, fmt.Errorf("password field: %w", err)
	}
	if err := field.SelectAllText(); err != nil {
		return false, fmt.Errorf("clear password field: %w", err)
	}
	if err := field.Input(candidate); err != nil {
		return false, fmt.Errorf("type password: %w", err)
	}

	button, err := page.ElementX(submitButtonX)
	if err != nil {
		return false, fmt.Errorf("submit button: %w", err)
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return false, fmt.Errorf("click submit: %w", err)
	}

	time.Sleep(5 * time.Second) // success screen or refusal renders

	if b.clickContinue() {
		b.level++
		return true, nil
	}

	// No Continue button: fall back to level-heading progression.
	lvl, err := b.currentLevel()
	if err != nil {
		return false, nil
	}
	if lvl > b.level {
		b.level = lvl
		return true, nil
	}
	return false, nil
}

// clickContinue clicks the post-level Continue button when present.
func (b *Browser) clickContinue() bool {
	button, err := b.page.Timeout(2 * time.Second).ElementX(continueButtonX)
	if err != nil {
		return false
	}
	if err := button.Click(proto.InputMouseButtonLeft, 1); err != nil {
		log.Printf("continue button click failed: %v", err)
		return false
	}
	return true
}

// currentLevel parses the page heading, e.g. "Level 3".
func (b *Browser) currentLevel() (int, error) {
	heading, err := b.page.Timeout(2 * time.Second).Element(levelHeading)
	if err != nil {
		return 0, err
	}
	text, err := heading.Text()
	if err != nil {
		return 0, err
	}
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "Level") {
		return 0, fmt.Errorf("no level in heading %q", text)
	}
	fields := strings.Fields(text)
	return strconv.Atoi(fields[len(fields)-1])
}

// #endregion
