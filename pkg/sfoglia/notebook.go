package sfoglia

import (
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// NotebookPage is one content page between the cover and the end.
type NotebookPage struct {
	Title string // Heading rendered at the top of the page
	Body  string // Word-wrapped body text
}

// NotebookOptions configures the Notebook widget.
type NotebookOptions struct {
	// Title is rendered on the closed cover.
	Title string
	// Subtitle is rendered under the title in a smaller font.
	Subtitle string
	// EmblemPath is an optional SVG rasterized onto the cover.
	EmblemPath string
	// OpenDuration and TurnDuration override the animation timings.
	// Zero values fall back to the loaded config.
	OpenDuration time.Duration
	TurnDuration time.Duration
	// SwipeThreshold overrides the minimum swipe distance in pixels.
	SwipeThreshold int32
	// Interaction selects full-surface click zones or edge buttons.
	// Effective only when InteractionSet is true; otherwise the loaded
	// config decides.
	Interaction    InteractionMode
	InteractionSet bool
	// ShowThemeBackground renders the theme background image behind the notebook.
	ShowThemeBackground bool
	// FooterHelpItems replaces the default footer help pills.
	FooterHelpItems []FooterHelpItem
}

// DefaultNotebookOptions returns options populated from the active config.
func DefaultNotebookOptions(title string) NotebookOptions {
	config := ActiveConfig()
	return NotebookOptions{
		Title:          title,
		OpenDuration:   config.Notebook.OpenDuration.Duration,
		TurnDuration:   config.Notebook.TurnDuration.Duration,
		SwipeThreshold: config.Notebook.SwipeThreshold,
		Interaction:    config.Notebook.Interaction,
		InteractionSet: true,
	}
}

type notebookController struct {
	window      *internal.Window
	renderer    *sdl.Renderer
	turns       *PageTurnController
	pages       []NotebookPage
	interaction InteractionMode
	footerItems []FooterHelpItem

	swipe       *SwipeDetector
	directional internal.DirectionalInput
	indicator   *Indicator
	textures    *internal.TextureCache
	emblem      *sdl.Texture

	inputDelay    time.Duration
	lastInputTime time.Time
	dismissed     bool
	completed     bool
}

// Notebook displays a flip-open notebook: a cover that opens on interaction
// and a stack of pages turned forward and backward by click zones, arrow
// buttons, or touch swipes, with a page-position indicator.
//
// It blocks until the user dismisses the widget (B button / quit) or confirms
// from the end position (A button on the back cover). Returns ErrCancelled
// when dismissed from the closed cover without ever opening it.
func Notebook(pages []NotebookPage, options NotebookOptions) (*NotebookResult, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	window := internal.GetWindow()
	renderer := window.Renderer

	config := ActiveConfig()
	openDuration := options.OpenDuration
	if openDuration <= 0 {
		openDuration = config.Notebook.OpenDuration.Duration
	}
	turnDuration := options.TurnDuration
	if turnDuration <= 0 {
		turnDuration = config.Notebook.TurnDuration.Duration
	}
	swipeThreshold := options.SwipeThreshold
	if swipeThreshold <= 0 {
		swipeThreshold = config.Notebook.SwipeThreshold
	}
	interaction := config.Notebook.Interaction
	if options.InteractionSet {
		interaction = options.Interaction
	}

	controller := &notebookController{
		window:      window,
		renderer:    renderer,
		pages:       pages,
		interaction: interaction,
		footerItems: options.FooterHelpItems,
		turns: NewPageTurnController(PageTurnSettings{
			TotalPages:   len(pages),
			OpenDuration: openDuration,
			TurnDuration: turnDuration,
		}),
		swipe:         NewSwipeDetector(swipeThreshold),
		directional:   internal.NewDirectionalInput(),
		indicator:     NewIndicator(),
		textures:      internal.NewTextureCache(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	defer controller.textures.Destroy()

	if options.EmblemPath != "" {
		emblem, err := internal.LoadSVGTexture(renderer, options.EmblemPath, 96, 96)
		if err != nil {
			internal.GetInternalLogger().Warn("Cover emblem unavailable", "path", options.EmblemPath, "error", err)
		} else {
			controller.emblem = emblem
			defer emblem.Destroy()
		}
	}

	if controller.footerItems == nil {
		controller.footerItems = []FooterHelpItem{
			{ButtonName: "A", HelpText: "Open"},
			{ButtonName: "B", HelpText: "Back"},
		}
	}

	for {
		if !controller.handleEvents() {
			break
		}

		now := time.Now()
		controller.turns.Update(now)
		controller.handleDirectionalRepeat()

		controller.render(options, now)
		sdl.Delay(16)
	}

	if controller.dismissed && !controller.turns.Opened() {
		return nil, ErrCancelled
	}

	action := NotebookActionDismissed
	if controller.completed {
		action = NotebookActionCompleted
	}

	return &NotebookResult{
		Action:    action,
		FinalPage: controller.turns.CurrentPage(),
		Opened:    controller.turns.Opened(),
	}, nil
}

func (c *notebookController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.dismissed = true
			return false

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
				// Layout changed mid-animation: force the state machine
				// back to a consistent resting display.
				c.window.HandleResize(e.Data1, e.Data2)
				c.turns.HandleResize()
				c.swipe.Cancel()
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			switch e.Type {
			case sdl.MOUSEBUTTONDOWN:
				c.swipe.Begin(e.X, e.Y)
			case sdl.MOUSEBUTTONUP:
				c.pointerUp(e.X, e.Y)
			}

		case *sdl.TouchFingerEvent:
			// Touch coordinates are normalized to [0, 1]
			x := int32(e.X * float32(c.window.GetWidth()))
			y := int32(e.Y * float32(c.window.GetHeight()))
			switch e.Type {
			case sdl.FINGERDOWN:
				c.swipe.Begin(x, y)
			case sdl.FINGERUP:
				c.pointerUp(x, y)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent,
			*sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			c.directional.SetHeld(inputEvent.Button, inputEvent.Pressed)

			if !inputEvent.Pressed {
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			if !c.handleButton(inputEvent.Button) {
				return false
			}
		}
	}
	return true
}

// handleButton reacts to a pressed virtual button. Returns false to leave
// the widget loop.
func (c *notebookController) handleButton(button constants.VirtualButton) bool {
	switch button {
	case constants.VirtualButtonLeft:
		c.turns.Retreat()

	case constants.VirtualButtonRight:
		if c.turns.Opened() {
			c.turns.Advance()
		} else {
			c.turns.Open()
		}

	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if !c.turns.Opened() {
			c.turns.Open()
		} else if c.turns.AtEnd() && !c.turns.Animating() {
			c.completed = true
			return false
		} else {
			c.turns.Advance()
		}

	case constants.VirtualButtonB:
		c.dismissed = true
		return false
	}
	return true
}

// pointerUp finishes a pointer interaction: a qualifying horizontal drag is a
// swipe, anything else is a click resolved through the zoning rules.
func (c *notebookController) pointerUp(x, y int32) {
	switch c.swipe.End(x, y) {
	case SwipeLeft:
		if c.turns.Opened() {
			c.turns.Advance()
		} else {
			c.turns.Open()
		}
		return
	case SwipeRight:
		c.turns.Retreat()
		return
	}

	c.pointerClick(x, y)
}

func (c *notebookController) pointerClick(x, y int32) {
	// Control regions never turn pages
	if pointInRect(x, y, footerRect(c.window)) {
		return
	}

	if !c.turns.Opened() {
		if pointInRect(x, y, c.notebookRect()) {
			c.turns.Open()
		}
		return
	}

	content := c.notebookRect()
	if !pointInRect(x, y, content) {
		return
	}

	switch c.interaction {
	case InteractionButtons:
		if pointInRect(x, y, c.prevButtonRect()) {
			c.turns.Retreat()
		} else if pointInRect(x, y, c.nextButtonRect()) {
			c.turns.Advance()
		}
	default:
		if x < content.X+content.W/2 {
			c.turns.Retreat()
		} else {
			c.turns.Advance()
		}
	}
}

func (c *notebookController) handleDirectionalRepeat() {
	switch c.directional.Update() {
	case internal.DirectionLeft:
		c.turns.Retreat()
	case internal.DirectionRight:
		if c.turns.Opened() {
			c.turns.Advance()
		}
	}
}

// notebookRect is the active content area: the page (or cover) footprint,
// centered above the footer.
func (c *notebookController) notebookRect() sdl.Rect {
	padding := internal.UniformPadding(40)
	w := c.window.GetWidth()
	h := c.window.GetHeight() - footerHeight

	nbW := w * 7 / 10
	nbH := h - padding.Vertical()
	return sdl.Rect{
		X: (w - nbW) / 2,
		Y: padding.Top,
		W: nbW,
		H: nbH,
	}
}

const turnButtonSize int32 = 72

func (c *notebookController) prevButtonRect() sdl.Rect {
	nb := c.notebookRect()
	return sdl.Rect{
		X: nb.X,
		Y: nb.Y + (nb.H-turnButtonSize)/2,
		W: turnButtonSize,
		H: turnButtonSize,
	}
}

func (c *notebookController) nextButtonRect() sdl.Rect {
	nb := c.notebookRect()
	return sdl.Rect{
		X: nb.X + nb.W - turnButtonSize,
		Y: nb.Y + (nb.H-turnButtonSize)/2,
		W: turnButtonSize,
		H: turnButtonSize,
	}
}

func (c *notebookController) render(options NotebookOptions, now time.Time) {
	theme := internal.GetTheme()

	c.renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	c.renderer.Clear()

	if options.ShowThemeBackground && c.window.Background != nil {
		c.window.RenderBackground()
	}

	kind, turningPage, progress, animating := c.turns.Turning(now)

	if !c.turns.Opened() {
		c.renderCover(options, c.notebookRect(), 0)
	} else {
		c.renderPageArea(theme, kind, turningPage, progress, animating)

		if animating && kind == TurnOpen {
			c.renderCover(options, c.notebookRect(), progress)
		}
	}

	c.renderIndicator(theme)
	renderFooter(c.renderer, internal.Fonts.SmallFont, c.footerItems, c.window)

	c.window.Present()
}

// renderCover draws the closed cover. While the opening animation runs, the
// cover squeezes toward the spine as openProgress goes from 0 to 1.
func (c *notebookController) renderCover(options NotebookOptions, nb sdl.Rect, openProgress float64) {
	theme := internal.GetTheme()

	coverW := int32(float64(nb.W) * (1 - openProgress))
	if coverW <= 0 {
		return
	}
	cover := sdl.Rect{X: nb.X, Y: nb.Y, W: coverW, H: nb.H}

	c.renderer.SetDrawColor(theme.CoverColor.R, theme.CoverColor.G, theme.CoverColor.B, 255)
	c.renderer.FillRect(&cover)
	c.renderer.SetDrawColor(theme.EdgeColor.R, theme.EdgeColor.G, theme.EdgeColor.B, 255)
	c.renderer.DrawRect(&cover)

	// Skip cover content mid-animation; squeezed text reads badly.
	if openProgress > 0 {
		return
	}

	centerX := nb.X + nb.W/2
	y := nb.Y + nb.H/3

	if c.emblem != nil {
		_, _, emblemW, emblemH, err := c.emblem.Query()
		if err == nil {
			dst := sdl.Rect{X: centerX - emblemW/2, Y: y - emblemH - 20, W: emblemW, H: emblemH}
			c.renderer.Copy(c.emblem, nil, &dst)
		}
	} else if internal.Fonts.IconFont != nil {
		iconW := internal.TextWidth(internal.Fonts.IconFont, constants.Book)
		internal.RenderText(c.renderer, internal.Fonts.IconFont, constants.Book,
			centerX-iconW/2, y-int32(internal.Fonts.IconFont.Height())-20, theme.CoverTextColor)
	}

	y += internal.RenderMultilineText(c.renderer, options.Title, internal.Fonts.LargeFont,
		nb.W-80, centerX, y, theme.CoverTextColor, constants.TextAlignCenter)

	if options.Subtitle != "" {
		y += constants.DefaultTitleSpacing + 20
		internal.RenderMultilineText(c.renderer, options.Subtitle, internal.Fonts.SmallFont,
			nb.W-80, centerX, y, theme.CoverTextColor, constants.TextAlignCenter)
	}
}

// renderPageArea draws the resting page (or the back cover at the end
// position) and, when a turn is in flight, the turning page squeezing across
// the spread.
func (c *notebookController) renderPageArea(theme internal.Theme, kind TurnKind, turningPage int, progress float64, animating bool) {
	nb := c.notebookRect()

	// The page the display rests on once the in-flight turn finishes
	restingPage := c.turns.CurrentPage()
	if animating && kind == TurnForward {
		restingPage++
	}

	if restingPage > c.turns.TotalPages() {
		c.renderBackCover(theme, nb)
	} else if restingPage >= 1 {
		c.renderPageContent(theme, nb, restingPage)
	}

	if animating && kind != TurnOpen && turningPage >= 1 {
		// Forward turns shrink toward the spine; reverse turns grow back out
		frac := 1 - progress
		if kind == TurnBackward {
			frac = progress
		}
		overlayW := int32(float64(nb.W) * frac)
		if overlayW > 0 {
			overlay := sdl.Rect{X: nb.X, Y: nb.Y, W: overlayW, H: nb.H}
			c.renderer.SetDrawColor(theme.PaperColor.R, theme.PaperColor.G, theme.PaperColor.B, 255)
			c.renderer.FillRect(&overlay)
			c.renderer.SetDrawColor(theme.EdgeColor.R, theme.EdgeColor.G, theme.EdgeColor.B, 255)
			c.renderer.DrawRect(&overlay)
		}
	}

	if c.interaction == InteractionButtons && !animating {
		c.renderTurnButtons(theme)
	}
}

func (c *notebookController) renderPageContent(theme internal.Theme, nb sdl.Rect, ordinal int) {
	c.renderer.SetDrawColor(theme.PaperColor.R, theme.PaperColor.G, theme.PaperColor.B, 255)
	c.renderer.FillRect(&nb)
	c.renderer.SetDrawColor(theme.EdgeColor.R, theme.EdgeColor.G, theme.EdgeColor.B, 255)
	c.renderer.DrawRect(&nb)

	page := c.pages[ordinal-1]
	padding := internal.UniformPadding(36)
	textWidth := nb.W - padding.Horizontal()
	centerX := nb.X + nb.W/2
	y := nb.Y + padding.Top

	if page.Title != "" {
		y += internal.RenderMultilineText(c.renderer, page.Title, internal.Fonts.MediumFont,
			textWidth, centerX, y, theme.InkColor, constants.TextAlignCenter)
		y += constants.DefaultTitleSpacing + 18
	}

	internal.RenderMultilineText(c.renderer, page.Body, internal.Fonts.SmallFont,
		textWidth, nb.X+padding.Left, y, theme.InkColor, constants.TextAlignLeft)
}

func (c *notebookController) renderBackCover(theme internal.Theme, nb sdl.Rect) {
	c.renderer.SetDrawColor(theme.CoverColor.R, theme.CoverColor.G, theme.CoverColor.B, 255)
	c.renderer.FillRect(&nb)
	c.renderer.SetDrawColor(theme.EdgeColor.R, theme.EdgeColor.G, theme.EdgeColor.B, 255)
	c.renderer.DrawRect(&nb)

	centerX := nb.X + nb.W/2
	y := nb.Y + nb.H/2 - int32(internal.Fonts.MediumFont.Height())

	if internal.Fonts.IconFont != nil {
		iconW := internal.TextWidth(internal.Fonts.IconFont, constants.BookOpen)
		internal.RenderText(c.renderer, internal.Fonts.IconFont, constants.BookOpen,
			centerX-iconW/2, y-int32(internal.Fonts.IconFont.Height())-16, theme.CoverTextColor)
	}

	label := c.indicator.Label(c.turns.CurrentPage(), c.turns.TotalPages())
	labelW := internal.TextWidth(internal.Fonts.MediumFont, label)
	internal.RenderText(c.renderer, internal.Fonts.MediumFont, label, centerX-labelW/2, y, theme.CoverTextColor)
}

func (c *notebookController) renderTurnButtons(theme internal.Theme) {
	prev, next := c.prevButtonRect(), c.nextButtonRect()

	prevLabel, nextLabel := "<", ">"
	font := internal.Fonts.MediumFont
	if internal.Fonts.IconFont != nil {
		prevLabel, nextLabel = constants.ChevronLeft, constants.ChevronRight
		font = internal.Fonts.IconFont
	}

	if c.turns.CurrentPage() > 1 {
		c.renderButton(prev, prevLabel, font, theme)
	}
	if !c.turns.AtEnd() {
		c.renderButton(next, nextLabel, font, theme)
	}
}

func (c *notebookController) renderButton(rect sdl.Rect, label string, font *ttf.Font, theme internal.Theme) {
	c.renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
	c.renderer.FillRect(&rect)

	labelW := internal.TextWidth(font, label)
	internal.RenderText(c.renderer, font, label,
		rect.X+(rect.W-labelW)/2, rect.Y+(rect.H-int32(font.Height()))/2, theme.ButtonLabelColor)
}

// renderIndicator draws the page-position pill in the footer. The rendered
// label texture is cached per label; it only re-renders when the position
// changes.
func (c *notebookController) renderIndicator(theme internal.Theme) {
	label := c.indicator.Label(c.turns.CurrentPage(), c.turns.TotalPages())
	key := "indicator:" + label

	texture := c.textures.Get(key)
	if texture == nil {
		surface, err := internal.Fonts.SmallFont.RenderUTF8Blended(label, theme.ButtonLabelColor)
		if err != nil {
			return
		}
		texture, err = c.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return
		}
		c.textures.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	rect := footerRect(c.window)
	pill := sdl.Rect{
		X: rect.X + footerPillMargin,
		Y: rect.Y + (rect.H-(h+footerPillVPad*2))/2,
		W: w + footerPillHPad*2,
		H: h + footerPillVPad*2,
	}
	c.renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, 255)
	c.renderer.FillRect(&pill)

	dst := sdl.Rect{X: pill.X + footerPillHPad, Y: pill.Y + footerPillVPad, W: w, H: h}
	c.renderer.Copy(texture, nil, &dst)
}

func pointInRect(x, y int32, rect sdl.Rect) bool {
	return x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H
}
