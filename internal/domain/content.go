package domain

// DefaultPage returns the content of the WHOLE site
func DefaultPage() *Page {
	return &Page{
		Sections: []Section{
			{Anchor: AnchorHero, Title: "WHOLE"},
			{
				Anchor:  AnchorValues,
				Title:   "The Five Values",
				NavName: "Values",
				Intro:   "Each value manifests through virtues of Wisdom — together forming a holographic constellation where each part contains the whole.",
			},
			{
				Anchor:  AnchorPhilosophy,
				Title:   "A Living Memeplex of Infinite Depth",
				NavName: "Philosophy",
			},
			{
				Anchor:  AnchorPractices,
				Title:   "Ecology of Practices",
				NavName: "Practices",
				Intro:   "Everything that affords self-transformation and the cultivation of wisdom is a potential tool for furthering the path.",
			},
			{Anchor: AnchorScripture, Title: "From the Scripture", NavName: "Scripture"},
			{Anchor: AnchorCommunity, Title: "Join the Becoming", NavName: "Community"},
			{Anchor: AnchorFooter, Title: "WHOLE"},
		},
		Hero: Hero{
			Tagline:      "A Life-Affirming Path",
			Title:        "WHOLE",
			Words:        []string{"Wonder", "Honesty", "Orthobiosis", "Life", "Entelechy"},
			Quote:        "The hour nears when humanity shall shatter idols and breathe anew the sacred fire glimpsed in primordial visions. No more kneeling before the Word. We rise as chalices to the Unsayable.",
			Attribution:  "— WHOLE, Sacred Text, § 2",
			CallToAction: "Begin the Journey",
		},
		Values: []Value{
			{Letter: "W", Name: "Wonder", Description: "Philosophy begins in wonder — the capacity for curiosity, astonishment, and appreciation of beauty and complexity. It invokes humility before the vast mystery of existence."},
			{Letter: "H", Name: "Honesty", Description: "Truthfulness, transparency, and sincerity in all dealings — with others and oneself. Authenticity that inoculates against ideology and promotes introspection."},
			{Letter: "O", Name: "Orthobiosis", Description: "Right living aimed at optimal health — not merely freedom from ailments, but the practice of aligning oneself with the patterns of Life itself."},
			{Letter: "L", Name: "Life", Description: "The singular intrinsic value — self-potentiating, self-actualizing creativity. Life as will to power, embracing amor fati and Dionysian affirmation."},
			{Letter: "E", Name: "Entelechy", Description: "The active actualization of potential — maturation, character development, self-mastery. The endless process of individuation and self-overcoming."},
		},
		Philosophy: Philosophy{
			Badge: "Holographic Structure",
			Paragraphs: []string{
				"WHOLE is structured like a hologram. Its core principles are fractally enfolded across all its conceptual domains — axiology, ethics, metaphysics, epistemology, aesthetics — each serving as a psychoactive gateway into the integral ethos.",
				"Whether one engages with any dimension in depth, one will naturally arrive at an intuitive apprehension of the whole. This holographic structure lends WHOLE profound coherence while making it extremely adaptable and resilient.",
			},
			Emphasis: `Its core "genome" is not localized but holographically dispersed as a non-localizable resonance field integrating all diverse manifestations.`,
		},
		Practices: []Practice{
			{Icon: "◉", Title: "Meditation", Description: "Mindfulness practices expanding awareness inward toward the Pure Consciousness Event."},
			{Icon: "◈", Title: "Contemplation", Description: "Death contemplation and loving-kindness meditation expanding awareness toward Resonant At-Onement."},
			{Icon: "◇", Title: "Active Imagination", Description: "Dream analysis and Jungian active imagination for shadow integration and individuation."},
			{Icon: "○", Title: "Movement", Description: "Dance, Tai Chi, and natural movement practices that facilitate flow states."},
			{Icon: "◎", Title: "Community", Description: "Regular gatherings, shared meals, and circling practices for distributed cognition."},
			{Icon: "◐", Title: "Artistic Expression", Description: "Art as the highest task — disclosing beauty and generative power through symbolic expression."},
		},
		Quotes: []Quote{
			{Number: 3, Text: "Consciousness asleep worships phantoms, fleeting idols born of delusion. But awakened, each mind beholds the divine within, the lucid potential birthing worlds from void."},
			{Number: 14, Text: "The purpose of creation is not to serve you, but for you to serve creation by fully becoming you. When your unique ode rings loud, you amplify existence itself."},
			{Number: 24, Text: "Fractured fragments longing for perfection forsake the fertile soil of wholeness. In embracing the meandering way of integrity, the path reveals a living terrain; flaws foster wisdom."},
			{Number: 53, Text: "My god is no 'he', no 'it', but a verb, a ceaseless process. When you journey the path of individuation, striving to actualize your healthiest potential, you are worshipping the truest god."},
		},
		Community: Community{
			Body: "WHOLE propagates through organic resonance — inspiring overflow that cascades from one awakened soul to another. Connection amplifies wisdom; isolation withers it.",
			Links: []Link{
				{Label: "Contact the Inaugural Chalice", URL: "https://www.facebook.com/uberrheogenic/"},
				{Label: "Read the Prototype"},
			},
		},
		Footer: Footer{Motto: "A life-affirming memeplex"},
	}
}
