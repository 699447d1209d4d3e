package engine

import (
	"log/slog"

	"github.com/talgya/cognomen/internal/naming"
)

// Naming is the full outcome of naming one polity.
type Naming struct {
	Entry     naming.Entry
	Result    naming.Result
	Size      naming.SizeTier
	Adjective string
	Persona   string
	Vassal    bool
}

// Namer regenerates polity names on host events and serves them to display calls.
// All methods are meant to be called from the host's event thread.
type Namer struct {
	Host       Host
	Adjectives AdjectiveResolver
	Thresholds naming.EraThresholds
	Modes      ModeSource
	Logger     *slog.Logger

	// OnRenamed is called after a slot's names are stored.
	OnRenamed func(p Polity, n Naming)

	cache *naming.Cache
	ready bool
}

// NewNamer creates a Namer with the default era thresholds.
func NewNamer(host Host, adjectives AdjectiveResolver, modes ModeSource) *Namer {
	if modes == nil {
		modes = FixedMode(naming.DefaultDisplayMode)
	}
	return &Namer{
		Host:       host,
		Adjectives: adjectives,
		Thresholds: naming.DefaultEraThresholds(),
		Modes:      modes,
		Logger:     slog.Default(),
	}
}

// LoadMatch sizes the cache to the host's polity count. Names are not
// computed yet; that waits for PresentationStarted and the first events.
func (n *Namer) LoadMatch() {
	count := n.Host.PolityCount()
	n.cache = naming.NewCache(count, n.Logger)
	n.Logger.Info("naming cache initialized", "polities", count)
}

// EndMatch discards the cache.
func (n *Namer) EndMatch() {
	n.cache = nil
	n.ready = false
}

// PresentationStarted marks leader avatars as loaded. Recomputation is a
// no-op until then.
func (n *Namer) PresentationStarted() {
	n.ready = true
	n.Logger.Debug("presentation started, naming enabled")
}

// PresentationStopped disables recomputation again.
func (n *Namer) PresentationStopped() {
	n.ready = false
	n.Logger.Debug("presentation stopped, naming disabled")
}

// Ready reports whether recomputation will run.
func (n *Namer) Ready() bool {
	return n.ready && n.cache != nil
}

// PolityInitialized handles a polity finishing its setup.
func (n *Namer) PolityInitialized(index int) { n.Refresh(index) }

// CivicChoiceChanged handles a civic being enacted.
func (n *Namer) CivicChoiceChanged(index int) { n.Refresh(index) }

// IdeologyChanged handles a shift on an ideological axis.
func (n *Namer) IdeologyChanged(index int) { n.Refresh(index) }

// NameRefreshed handles the host refreshing its own name for a polity.
func (n *Namer) NameRefreshed(index int) { n.Refresh(index) }

// TerritoryOwnerChanged refreshes both the losing and the gaining polity.
// Either index may be negative when the territory had no owner.
func (n *Namer) TerritoryOwnerChanged(oldOwner, newOwner int) {
	n.Refresh(oldOwner)
	n.Refresh(newOwner)
}

// Refresh recomputes and caches the names of one polity, then of every
// vassal it holds, since vassal names follow the liege's era and adjective.
// It does nothing for negative indices, before the match is loaded or while
// presentation is down.
func (n *Namer) Refresh(index int) {
	if index < 0 {
		return
	}
	if !n.Ready() {
		n.Logger.Debug("naming skipped, not ready", "slot", index)
		return
	}
	p, ok := n.Host.Polity(index)
	if !ok {
		n.Logger.Debug("naming skipped, unknown polity", "slot", index)
		return
	}
	if !n.store(p) || !p.Major {
		return
	}

	for i := range n.Host.PolityCount() {
		if i == index {
			continue
		}
		v, ok := n.Host.Polity(i)
		if ok && v.Major && v.Liege != nil && *v.Liege == index {
			n.store(v)
		}
	}
}

// store computes and caches one polity's names. It reports whether the
// cache accepted them.
func (n *Namer) store(p Polity) bool {
	result := n.Compute(p)
	if err := n.cache.Store(p.Index, result.Entry); err != nil {
		return false
	}
	if n.OnRenamed != nil {
		n.OnRenamed(p, result)
	}
	return true
}

// Compute names a polity without touching the cache.
func (n *Namer) Compute(p Polity) Naming {
	if !p.Major {
		return Naming{
			Entry: naming.Entry{FullName: p.RoughName, LongName: p.RoughName},
		}
	}

	profile := naming.BuildProfile(p.EnactedChoices(), p.Axes)
	size := n.thresholds().Classify(p.Era, p.Territories)

	gender := naming.Male
	if p.GenderKnown {
		gender = p.Gender
	}
	persona := p.Persona()
	adjective := n.adjective(p)

	result := naming.Generate(profile, size, adjective, persona, gender)
	government := result.GovernmentName

	vassal := false
	if p.Liege != nil {
		if liege, ok := n.Host.Polity(*p.Liege); ok {
			government = naming.VassalName(adjective, liege.Era, n.adjective(liege))
			vassal = true
		} else {
			n.Logger.Warn("liege polity not found", "slot", p.Index, "liege", *p.Liege)
		}
	}

	long := naming.ResolveLongName(n.Modes.DisplayMode(), naming.LongNameInput{
		GovernmentName: government,
		AvatarName:     result.AvatarName,
		PersonaName:    persona,
		Adjective:      adjective,
		RoughName:      p.RoughName,
	})

	n.Logger.Debug("polity named",
		"slot", p.Index,
		"form", result.Form,
		"size", size.String(),
		"full_name", government,
		"long_name", long,
	)

	return Naming{
		Entry: naming.Entry{
			FullName:   government,
			LongName:   long,
			AvatarName: result.AvatarName,
		},
		Result:    result,
		Size:      size,
		Adjective: adjective,
		Persona:   persona,
		Vassal:    vassal,
	}
}

// FullName returns the cached government-form name of a polity.
func (n *Namer) FullName(index int) string { return n.lookup(index).FullName }

// LongName returns the cached display-mode name of a polity.
func (n *Namer) LongName(index int) string { return n.lookup(index).LongName }

// AvatarName returns the cached titled leader name of a polity.
func (n *Namer) AvatarName(index int) string { return n.lookup(index).AvatarName }

func (n *Namer) lookup(index int) naming.Entry {
	if e, ok := n.cache.Get(index); ok {
		return e
	}
	rough := ""
	if p, ok := n.Host.Polity(index); ok {
		rough = p.RoughName
	}
	return n.cache.Lookup(index, rough)
}

func (n *Namer) adjective(p Polity) string {
	if n.Adjectives == nil {
		return p.AdjectiveKey
	}
	return n.Adjectives.Adjective(p.Culture, p.AdjectiveKey)
}

func (n *Namer) thresholds() naming.EraThresholds {
	if n.Thresholds == nil {
		return naming.DefaultEraThresholds()
	}
	return n.Thresholds
}
