package scraper

// SampleRelease returns a hand-authored release used when scraping fails
// or yields no JEPs. The content is fixed: the same version always
// produces an identical Release, keeping fallback decks deterministic.
func SampleRelease(version string) *Release {
	release := &Release{
		Version:     version,
		ReleaseDate: "2024-10-22",
		Tagline:     DefaultTagline,
	}

	release.AddJEP(JEP{
		Number:      "123",
		Title:       "Pattern Matching for switch (Preview)",
		Description: "Enhance the Java programming language with pattern matching for switch expressions and statements.",
		Examples: []Example{
			{
				Title: "Basic Pattern Matching in Switch",
				Content: `String response = switch (obj) {
    case Integer i -> String.format("int %d", i);
    case String s -> String.format("String %s", s);
    default -> obj.toString();
};`,
			},
		},
	})

	release.AddJEP(JEP{
		Number:      "456",
		Title:       "Virtual Threads (Second Preview)",
		Description: "Introduce virtual threads to the Java Platform.",
	})

	release.AddJEP(JEP{
		Number:      "789",
		Title:       "Structured Concurrency (Incubator)",
		Description: "Simplify multithreaded programming by treating multiple tasks running in different threads as a single unit of work.",
		Examples: []Example{
			{
				Title: "Structured Concurrency Example",
				Content: `try (var scope = StructuredTaskScope.ShutdownOnFailure()) {
    Future<String> user = scope.fork(() -> findUser());
    Future<Integer> order = scope.fork(() -> fetchOrder());

    scope.join();
    return new Response(user.resultNow(), order.resultNow());
}`,
			},
		},
	})

	return release
}
