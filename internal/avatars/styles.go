package avatars

// Style is a named visual sub-variant within an element. The palette and
// prompt description seed the generative avatar replacement planned for the
// current placeholder image service.
type Style struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Element           Element  `json:"element"`
	Palette           []string `json:"palette"`
	PromptDescription string   `json:"promptDescription"`
}

// styleCatalog is fixed at process start and never mutated. Each element
// carries exactly four styles; list order matters for assignment.
var styleCatalog = map[Element][]Style{
	ElementEarth: {
		{ID: "earth-huerta", Name: "Huerta", Element: ElementEarth, Palette: []string{"#6B8E23", "#8FBC8F", "#556B2F"}, PromptDescription: "lush market-garden greens over rich tilled soil"},
		{ID: "earth-terracota", Name: "Terracota", Element: ElementEarth, Palette: []string{"#B85C38", "#E0A458", "#7A3B2E"}, PromptDescription: "sun-baked terracotta tiles and warm clay textures"},
		{ID: "earth-garrofera", Name: "Garrofera", Element: ElementEarth, Palette: []string{"#4F6F3A", "#8A7F56", "#2F3E2C"}, PromptDescription: "gnarled carob trees on dry stone terraces"},
		{ID: "earth-taronger", Name: "Taronger", Element: ElementEarth, Palette: []string{"#E8871E", "#3E7C3A", "#5B3A1E"}, PromptDescription: "orange groves heavy with fruit under deep green leaves"},
	},
	ElementWater: {
		{ID: "water-albufera", Name: "Albufera", Element: ElementWater, Palette: []string{"#3A7CA5", "#81C3D7", "#16425B"}, PromptDescription: "still lagoon water reflecting reeds at dusk"},
		{ID: "water-mediterrani", Name: "Mediterrani", Element: ElementWater, Palette: []string{"#006494", "#1B98E0", "#E8F1F2"}, PromptDescription: "open mediterranean blue with white foam crests"},
		{ID: "water-turia", Name: "Túria", Element: ElementWater, Palette: []string{"#4A919E", "#A7C4BC", "#212E35"}, PromptDescription: "a slow riverbed turned to gardens and shaded ponds"},
		{ID: "water-marina", Name: "Marina", Element: ElementWater, Palette: []string{"#05668D", "#62B6CB", "#CAE9FF"}, PromptDescription: "harbour water shimmering between moored hulls"},
	},
	ElementFire: {
		{ID: "fire-falles", Name: "Falles", Element: ElementFire, Palette: []string{"#D62828", "#F77F00", "#FCBF49"}, PromptDescription: "festival bonfires throwing sparks into the night"},
		{ID: "fire-mascleta", Name: "Mascletà", Element: ElementFire, Palette: []string{"#9B2226", "#EE9B00", "#001219"}, PromptDescription: "daylight gunpowder bursts and drifting smoke"},
		{ID: "fire-brasa", Name: "Brasa", Element: ElementFire, Palette: []string{"#BC3908", "#F6AA1C", "#621708"}, PromptDescription: "glowing embers under a paella pan at full heat"},
		{ID: "fire-ponent", Name: "Ponent", Element: ElementFire, Palette: []string{"#E85D04", "#FAA307", "#6A040F"}, PromptDescription: "a hot westerly sunset burning across dry hills"},
	},
	ElementAir: {
		{ID: "air-llevant", Name: "Llevant", Element: ElementAir, Palette: []string{"#8ECAE6", "#CDE7F0", "#457B9D"}, PromptDescription: "a damp easterly breeze rolling clouds off the sea"},
		{ID: "air-mistral", Name: "Mistral", Element: ElementAir, Palette: []string{"#A8DADC", "#F1FAEE", "#5C7AFF"}, PromptDescription: "cold clear wind sweeping the sky to glass"},
		{ID: "air-tramuntana", Name: "Tramuntana", Element: ElementAir, Palette: []string{"#B8C0FF", "#E2EAFC", "#3D5A80"}, PromptDescription: "mountain-born gusts bending pines on a ridge"},
		{ID: "air-boira", Name: "Boira", Element: ElementAir, Palette: []string{"#CFD8DC", "#ECEFF1", "#90A4AE"}, PromptDescription: "low valley fog softening every edge to grey"},
	},
}

// StyleForUser deterministically picks a style for an identifier within an
// element. It returns nil when the element is not recognized; callers must
// treat that as a legitimate empty result, not an error.
func StyleForUser(idOrSeed string, element Element) *Style {
	styles, ok := styleCatalog[element]
	if !ok || len(styles) == 0 {
		return nil
	}
	combined := idOrSeed + ":" + string(element)
	style := copyStyle(styles[HashSeed(combined)%int64(len(styles))])
	return &style
}

// ListStyles returns copies of the catalog styles for one element, or the
// whole catalog in declaration order (earth, water, fire, air) when element
// is empty. An unrecognized element yields nil.
func ListStyles(element Element) []Style {
	if element != "" {
		styles, ok := styleCatalog[element]
		if !ok {
			return nil
		}
		return copyStyles(styles)
	}
	all := make([]Style, 0, 4*len(Elements))
	for _, el := range Elements {
		all = append(all, copyStyles(styleCatalog[el])...)
	}
	return all
}

func copyStyles(styles []Style) []Style {
	out := make([]Style, len(styles))
	for i, s := range styles {
		out[i] = copyStyle(s)
	}
	return out
}

// copyStyle clones the palette slice so caller mutation cannot reach the
// catalog.
func copyStyle(s Style) Style {
	s.Palette = append([]string(nil), s.Palette...)
	return s
}
