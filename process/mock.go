package process

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// themedTitle selects the themed canned content. Any title that contains it
// gets the Harry Potter block, every other title gets the generic block.
const themedTitle = "Harry Potter"

// MockGenerator returns canned content after an artificial delay. It performs
// no inference.
type MockGenerator struct {
	delay time.Duration
	clock clockwork.Clock
}

func NewMockGenerator(delay time.Duration, clock clockwork.Clock) *MockGenerator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MockGenerator{
		delay: delay,
		clock: clock,
	}
}

func (m *MockGenerator) Name() string {
	return "mock generator"
}

func (m *MockGenerator) Generate(ctx context.Context, req GenerationRequest) (Content, error) {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return Content{}, ctx.Err()
		case <-m.clock.After(m.delay):
		}
	}

	if strings.Contains(req.Video.Title, themedTitle) {
		return Content{
			Summary:   themedSummary,
			KeyPoints: append([]string(nil), themedKeyPoints...),
			Notes:     themedNotes,
		}, nil
	}

	return Content{
		Summary:   genericSummary,
		KeyPoints: append([]string(nil), genericKeyPoints...),
		Notes:     fmt.Sprintf(genericNotes, req.Video.Title),
	}, nil
}

const themedSummary = `The "Harry Potter 20th Anniversary: Return to Hogwarts" trailer celebrates two decades since the release of the first film. It features emotional reunions of the original cast including Daniel Radcliffe, Emma Watson, and Rupert Grint as they revisit iconic sets and share memories.

The special includes interviews with key cast members and filmmakers who reflect on the journey of bringing J.K. Rowling's beloved wizarding world to life. The trailer captures the nostalgic atmosphere as the now-adult actors reminisce about growing up on set and the impact the franchise has had on their lives and global culture.`

var themedKeyPoints = []string{
	"Celebrates the 20th anniversary of the first Harry Potter film",
	"Features reunions of original cast members on iconic sets",
	"Includes Daniel Radcliffe, Emma Watson, and Rupert Grint reflecting on their experiences",
	"Contains interviews with key filmmakers about the franchise's journey",
	"Showcases behind-the-scenes memories and emotional moments",
	"Highlights the cultural impact of the Harry Potter series",
}

const themedNotes = `# Harry Potter 20th Anniversary: Return to Hogwarts

## Cast Reunions
- Daniel Radcliffe (Harry Potter), Emma Watson (Hermione Granger), and Rupert Grint (Ron Weasley) reunite on original sets
- Supporting cast members including Tom Felton, Helena Bonham Carter, Ralph Fiennes, and Gary Oldman make appearances
- Emotional moments as cast members see each other after years apart
- Cast revisits iconic locations including the Great Hall, Diagon Alley, and Platform 9¾

## Behind the Scenes Reflections
- Cast members share memories of growing up on set over a decade of filming
- Discussion of how the films changed their lives and careers
- Filmmakers discuss the challenges of adapting the beloved books
- Reflections on working with the young actors as they grew up through the series

## Cultural Impact
- Examination of how the Harry Potter franchise changed cinema and pop culture
- Discussion of the fandom and global phenomenon the series created
- Cast members reflect on the ongoing legacy of the franchise
- Revelations about previously unknown behind-the-scenes moments

## Production Details
- Special produced by Warner Bros. for the HBO Max streaming service
- Features interviews with directors including Chris Columbus, Alfonso Cuarón, and David Yates
- Includes archival footage from the filming of all eight movies
- Released to commemorate 20 years since "Harry Potter and the Philosopher's Stone" premiered`

const genericSummary = `This video provides an in-depth exploration of its subject matter, presenting key concepts and insights in an accessible format. The creator breaks down complex ideas with clear explanations and relevant examples.

The content follows a logical structure, starting with foundational concepts before progressing to more advanced topics. Throughout the video, practical applications and real-world examples help contextualize the information, making it more relatable and easier to understand.`

var genericKeyPoints = []string{
	"Presents a comprehensive overview of the main topic",
	"Uses clear examples to illustrate complex concepts",
	"Follows a logical progression from basic to advanced ideas",
	"Includes practical applications and real-world scenarios",
	"Addresses common misconceptions about the subject",
	"Provides actionable insights that viewers can apply",
}

// genericNotes takes the video title.
const genericNotes = `# %s - Detailed Notes

## Introduction
- Overview of the video's main focus and goals
- Brief background on the subject matter
- Importance of this topic in its broader context

## Key Concepts
- Definition and explanation of fundamental terms
- Breakdown of core principles and ideas
- Relationship between different elements of the subject

## Practical Applications
- Real-world examples showing concepts in action
- Step-by-step demonstrations of important processes
- Tips for implementing these ideas in various contexts

## Common Challenges and Solutions
- Identification of frequent obstacles related to the topic
- Strategies for overcoming difficulties
- Troubleshooting advice for common problems

## Advanced Considerations
- More complex aspects of the subject
- Nuanced details that experienced practitioners should know
- Emerging trends and future developments in the field

## Conclusion
- Summary of the most important takeaways
- Final thoughts on practical implementation
- Additional resources for further learning`
