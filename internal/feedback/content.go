// Package feedback selects canned narrative content for dating quiz results.
package feedback

import "github.com/TheABX/runmvmtquiz-sub001/internal/types"

type block = types.ContentBlock

// traitContent is keyed by subscale, then level.
var traitContent = map[types.Subscale]map[types.Level]block{
	types.SubscaleAnxiety: {
		types.LevelLow: {
			Title:  "Calm in connection",
			Body:   "You rarely worry about where you stand with someone. Slow replies and quiet weekends don't read as rejection to you.",
			Growth: "Your steadiness is an asset. Make sure it doesn't turn into not asking for what you want.",
		},
		types.LevelMedium: {
			Title:  "Occasional second-guessing",
			Body:   "Most of the time you feel secure, but uncertainty early on can pull your attention toward reading signals.",
			Growth: "Notice when you start scanning for reassurance and name the need directly instead.",
		},
		types.LevelHigh: {
			Title:  "Highly tuned to signals",
			Body:   "You pick up on small shifts in tone and timing, and ambiguity can feel urgent. This often shows up as overthinking texts or needing frequent reassurance.",
			Growth: "Build a short pause between the trigger and your response. Self-soothing first, then communication.",
		},
	},
	types.SubscaleAvoidance: {
		types.LevelLow: {
			Title:  "Comfortable with closeness",
			Body:   "You let people in without much hesitation and find emotional intimacy energizing rather than draining.",
			Growth: "Keep your own routines and friendships alive as things get serious.",
		},
		types.LevelMedium: {
			Title:  "Selective openness",
			Body:   "You open up once trust is established, but too much closeness too fast can make you want space.",
			Growth: "Tell partners when you need space so it isn't mistaken for losing interest.",
		},
		types.LevelHigh: {
			Title:  "Independence first",
			Body:   "You value self-reliance and can feel crowded when someone wants more closeness than you do. Pulling back can be your default under stress.",
			Growth: "Practice staying in the conversation for one more minute when you feel the urge to withdraw.",
		},
	},
	types.SubscaleNeuroticism: {
		types.LevelLow: {
			Title:  "Even keel",
			Body:   "Setbacks rarely knock you off balance for long. Your moods are steady and predictable to the people around you.",
			Growth: "Make room for other people's stronger emotions without rushing to fix them.",
		},
		types.LevelMedium: {
			Title:  "Responsive but grounded",
			Body:   "You feel stress and disappointment, and you usually recover within a reasonable time.",
			Growth: "Identify the two or three situations that reliably throw you off and plan for them.",
		},
		types.LevelHigh: {
			Title:  "Emotionally intense",
			Body:   "You feel things strongly and stress lingers. In dating this can amplify both the highs and the lows.",
			Growth: "Regular sleep, movement and a simple wind-down routine will do more for your dating life than any script.",
		},
	},
	types.SubscaleConscientiousness: {
		types.LevelLow: {
			Title:  "Go with the flow",
			Body:   "You're spontaneous and adaptable, though plans and follow-through can slip when life gets busy.",
			Growth: "Pick one commitment per week you always keep. Reliability is attractive.",
		},
		types.LevelMedium: {
			Title:  "Balanced reliability",
			Body:   "You follow through on what matters and leave room for spontaneity elsewhere.",
			Growth: "Be intentional about scheduling dates rather than leaving them to chance.",
		},
		types.LevelHigh: {
			Title:  "Dependable planner",
			Body:   "You show up when you say you will and like to have a plan. Partners can count on you.",
			Growth: "Leave space for unplanned moments. Not every date needs an agenda.",
		},
	},
	types.SubscaleTransformationalLeadership: {
		types.LevelLow: {
			Title:  "Quiet presence",
			Body:   "You tend to follow rather than set direction, and you may hold back ideas or preferences.",
			Growth: "Suggest the plan for the next date. Small acts of leadership build attraction and confidence.",
		},
		types.LevelMedium: {
			Title:  "Situational leader",
			Body:   "You step up when the moment calls for it and are comfortable sharing the lead.",
			Growth: "Lead with vision, not just logistics. Share where you want your life to go.",
		},
		types.LevelHigh: {
			Title:  "Natural motivator",
			Body:   "You inspire people around you and naturally set direction. Others feel energized by your presence.",
			Growth: "Make sure your partner has room to lead too. Ask before you decide.",
		},
	},
	types.SubscaleSelfFrame: {
		types.LevelLow: {
			Title:  "Frame under pressure",
			Body:   "Your sense of worth in dating leans on how the other person responds. Rejection can feel like a verdict on you.",
			Growth: "Anchor your value in your own standards and actions, not in the outcome of a single date.",
		},
		types.LevelMedium: {
			Title:  "Mostly anchored",
			Body:   "You generally hold your ground, though strong attraction can make you shift your standards.",
			Growth: "Write down your non-negotiables and revisit them when you feel yourself bending.",
		},
		types.LevelHigh: {
			Title:  "Strong frame",
			Body:   "You know what you offer and what you want. Outcomes don't define you, which makes you relaxed and magnetic.",
			Growth: "Keep curiosity alive. A strong frame works best paired with genuine interest in the other person.",
		},
	},
	types.SubscaleGoalOrientation: {
		types.LevelLow: {
			Title:  "Open-ended",
			Body:   "You haven't set a clear direction for your dating life, which can lead to drifting between connections.",
			Growth: "Define what you're looking for in one sentence and let it filter your choices.",
		},
		types.LevelMedium: {
			Title:  "Direction with flexibility",
			Body:   "You have a rough idea of what you want and stay open to surprises.",
			Growth: "Turn the rough idea into two or three concrete goals for the next three months.",
		},
		types.LevelHigh: {
			Title:  "Clear on the destination",
			Body:   "You know what you want from dating and act with purpose. Your time and energy go where they count.",
			Growth: "Stay patient. Clarity of goals shouldn't become pressure on every new connection.",
		},
	},
}

// attachmentContent is keyed by attachment style.
var attachmentContent = map[types.AttachmentStyle]block{
	types.AttachmentSecure: {
		Title:  "Secure",
		Body:   "You're comfortable with closeness and with independence. You trust easily without losing yourself, and conflict feels workable rather than threatening.",
		Growth: "Use your security to create safety for partners who find connection harder than you do.",
	},
	types.AttachmentAnxiousPreoccupied: {
		Title:  "Anxious-Preoccupied",
		Body:   "You crave closeness and can worry about a partner's commitment. When connection feels uncertain, you tend to pursue harder.",
		Growth: "Focus on self-soothing and on partners who are consistently available. Consistency calms the system more than intensity.",
	},
	types.AttachmentDismissiveAvoidant: {
		Title:  "Dismissive-Avoidant",
		Body:   "You value independence highly and can keep partners at arm's length. Emotional demands may feel like pressure.",
		Growth: "Practice sharing one feeling per conversation. Closeness built in small steps feels safer.",
	},
	types.AttachmentFearfulAvoidant: {
		Title:  "Fearful-Avoidant",
		Body:   "You want closeness and fear it at the same time, which can create push-pull patterns in relationships.",
		Growth: "Slow things down. Notice the moments you want to pull away and talk about them instead of acting on them.",
	},
}

// TraitContent returns the content block for a subscale at a level.
func TraitContent(sub types.Subscale, level types.Level) (types.ContentBlock, bool) {
	byLevel, ok := traitContent[sub]
	if !ok {
		return types.ContentBlock{}, false
	}
	c, ok := byLevel[level]
	return c, ok
}

// AttachmentContent returns the content block for an attachment style.
func AttachmentContent(style types.AttachmentStyle) (types.ContentBlock, bool) {
	c, ok := attachmentContent[style]
	return c, ok
}
