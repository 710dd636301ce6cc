package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/go-resty/resty/v2"
)

// fetchFallbackPatterns pulls a known JSON mirror of the pattern list. Any
// network or parse failure is an empty result; the caller falls through.
func fetchFallbackPatterns(ctx context.Context, client *resty.Client, url string) []rawEntry {
	decoded, err := fetchJSON(ctx, client, url)
	if err != nil {
		log.Printf("fallback fetch skipped url=%s err=%v", url, err)
		return nil
	}
	list, ok := decoded.([]any)
	if !ok {
		log.Printf("fallback fetch skipped url=%s err=not a list", url)
		return nil
	}
	return entriesFromList(list)
}

// loadLocalFallback reads patterns from a local JSON file, if configured.
func loadLocalFallback(path string) []rawEntry {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("local fallback skipped path=%s err=%v", path, err)
		return nil
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		log.Printf("local fallback skipped path=%s err=%v", path, err)
		return nil
	}
	list, ok := decoded.([]any)
	if !ok {
		return nil
	}
	return entriesFromList(list)
}

func entriesFromList(list []any) []rawEntry {
	entries := make([]rawEntry, 0, len(list))
	for _, item := range list {
		if entry, ok := item.(rawEntry); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// rawFromRecord converts a typed record back into the loose shape the
// normalizer accepts, so the built-in seed rides the same pipeline as
// scraped data.
func rawFromRecord(p PatternRecord) rawEntry {
	problems := make([]any, 0, len(p.Problems))
	for _, pr := range p.Problems {
		problems = append(problems, rawEntry{
			"title":      pr.Title,
			"difficulty": pr.Difficulty,
			"url":        pr.URL,
		})
	}
	return rawEntry{
		"pattern":  p.Pattern,
		"url":      p.URL,
		"notes":    p.Notes,
		"problems": problems,
	}
}

// builtinMinimalPatterns is the last rung of the fallback ladder: a small
// curated set so an offline run still produces a usable sheet.
func builtinMinimalPatterns() []rawEntry {
	entries := make([]rawEntry, 0, len(minimalPatternSeed))
	for _, p := range minimalPatternSeed {
		entries = append(entries, rawFromRecord(p))
	}
	return entries
}

var minimalPatternSeed = []PatternRecord{
	{
		Pattern: "Two Pointers",
		Notes:   "Move two indices from ends or same side to shrink search space.",
		Problems: []ProblemRecord{
			{Title: "Two Sum II - Input Array Is Sorted", Difficulty: "Medium", URL: "https://leetcode.com/problems/two-sum-ii-input-array-is-sorted/"},
			{Title: "3Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/3sum/"},
			{Title: "Container With Most Water", Difficulty: "Medium", URL: "https://leetcode.com/problems/container-with-most-water/"},
		},
	},
	{
		Pattern: "Binary Search",
		Notes:   "Halve the search space; prove monotonicity before applying.",
		Problems: []ProblemRecord{
			{Title: "Binary Search", Difficulty: "Easy", URL: "https://leetcode.com/problems/binary-search/"},
			{Title: "Search Insert Position", Difficulty: "Easy", URL: "https://leetcode.com/problems/search-insert-position/"},
			{Title: "Find Peak Element", Difficulty: "Medium", URL: "https://leetcode.com/problems/find-peak-element/"},
		},
	},
	{
		Pattern: "Sliding Window",
		Notes:   "Maintain a window over the array/string to track counts or sums efficiently.",
		Problems: []ProblemRecord{
			{Title: "Longest Substring Without Repeating Characters", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/"},
			{Title: "Minimum Size Subarray Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/minimum-size-subarray-sum/"},
			{Title: "Permutation in String", Difficulty: "Medium", URL: "https://leetcode.com/problems/permutation-in-string/"},
		},
	},
	{
		Pattern: "Dynamic Programming",
		Notes:   "Overlapping subproblems + optimal substructure; define state, transition, base cases.",
		Problems: []ProblemRecord{
			{Title: "Climbing Stairs", Difficulty: "Easy", URL: "https://leetcode.com/problems/climbing-stairs/"},
			{Title: "Coin Change", Difficulty: "Medium", URL: "https://leetcode.com/problems/coin-change/"},
			{Title: "Longest Increasing Subsequence", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-increasing-subsequence/"},
		},
	},
	{
		Pattern: "Backtracking",
		Notes:   "DFS over decision tree; choose, explore, unchoose.",
		Problems: []ProblemRecord{
			{Title: "Subsets", Difficulty: "Medium", URL: "https://leetcode.com/problems/subsets/"},
			{Title: "Permutations", Difficulty: "Medium", URL: "https://leetcode.com/problems/permutations/"},
			{Title: "Combination Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/combination-sum/"},
		},
	},
	{
		Pattern: "Breadth-First Search",
		Notes:   "Level-order traversal for shortest paths or minimum steps.",
		Problems: []ProblemRecord{
			{Title: "Binary Tree Level Order Traversal", Difficulty: "Medium", URL: "https://leetcode.com/problems/binary-tree-level-order-traversal/"},
			{Title: "Word Ladder", Difficulty: "Hard", URL: "https://leetcode.com/problems/word-ladder/"},
			{Title: "Rotting Oranges", Difficulty: "Medium", URL: "https://leetcode.com/problems/rotting-oranges/"},
		},
	},
	{
		Pattern: "Depth-First Search",
		Notes:   "Recursive/stack traversal for connectivity, components, and enumerations.",
		Problems: []ProblemRecord{
			{Title: "Number of Islands", Difficulty: "Medium", URL: "https://leetcode.com/problems/number-of-islands/"},
			{Title: "Clone Graph", Difficulty: "Medium", URL: "https://leetcode.com/problems/clone-graph/"},
			{Title: "Course Schedule", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule/"},
		},
	},
	{
		Pattern: "Greedy",
		Notes:   "Pick locally optimal choices that lead to global optimum; prove with exchange arguments.",
		Problems: []ProblemRecord{
			{Title: "Jump Game", Difficulty: "Medium", URL: "https://leetcode.com/problems/jump-game/"},
			{Title: "Merge Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/merge-intervals/"},
			{Title: "Gas Station", Difficulty: "Medium", URL: "https://leetcode.com/problems/gas-station/"},
		},
	},
	{
		Pattern: "Disjoint Set / Union-Find",
		Notes:   "Maintain dynamic connectivity with union/find and path compression + union by rank.",
		Problems: []ProblemRecord{
			{Title: "Redundant Connection", Difficulty: "Medium", URL: "https://leetcode.com/problems/redundant-connection/"},
			{Title: "Number of Provinces", Difficulty: "Medium", URL: "https://leetcode.com/problems/number-of-provinces/"},
			{Title: "Accounts Merge", Difficulty: "Medium", URL: "https://leetcode.com/problems/accounts-merge/"},
		},
	},
	{
		Pattern: "Topological Sort",
		Notes:   "Order DAG nodes with in-degree (Kahn) or DFS post-order to detect cycles.",
		Problems: []ProblemRecord{
			{Title: "Course Schedule", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule/"},
			{Title: "Course Schedule II", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule-ii/"},
			{Title: "Alien Dictionary", Difficulty: "Hard", URL: "https://leetcode.com/problems/alien-dictionary/"},
		},
	},
	{
		Pattern: "Priority Queue / Heap",
		Notes:   "Maintain best/worst element efficiently; great for k-th problems and greedy checks.",
		Problems: []ProblemRecord{
			{Title: "Kth Largest Element in an Array", Difficulty: "Medium", URL: "https://leetcode.com/problems/kth-largest-element-in-an-array/"},
			{Title: "Task Scheduler", Difficulty: "Medium", URL: "https://leetcode.com/problems/task-scheduler/"},
			{Title: "Merge k Sorted Lists", Difficulty: "Hard", URL: "https://leetcode.com/problems/merge-k-sorted-lists/"},
		},
	},
	{
		Pattern: "Prefix Sum / Difference Array",
		Notes:   "Precompute cumulative sums to query ranges in O(1); use diffs for range updates.",
		Problems: []ProblemRecord{
			{Title: "Range Sum Query - Immutable", Difficulty: "Easy", URL: "https://leetcode.com/problems/range-sum-query-immutable/"},
			{Title: "Subarray Sum Equals K", Difficulty: "Medium", URL: "https://leetcode.com/problems/subarray-sum-equals-k/"},
			{Title: "Corporate Flight Bookings", Difficulty: "Medium", URL: "https://leetcode.com/problems/corporate-flight-bookings/"},
		},
	},
	{
		Pattern: "Monotonic Stack / Queue",
		Notes:   "Maintain increasing/decreasing stack to find next/prev greater/smaller efficiently.",
		Problems: []ProblemRecord{
			{Title: "Daily Temperatures", Difficulty: "Medium", URL: "https://leetcode.com/problems/daily-temperatures/"},
			{Title: "Largest Rectangle in Histogram", Difficulty: "Hard", URL: "https://leetcode.com/problems/largest-rectangle-in-histogram/"},
			{Title: "Sliding Window Maximum", Difficulty: "Hard", URL: "https://leetcode.com/problems/sliding-window-maximum/"},
		},
	},
	{
		Pattern: "Trie",
		Notes:   "Prefix tree for fast prefix queries, word search, and replacement.",
		Problems: []ProblemRecord{
			{Title: "Implement Trie (Prefix Tree)", Difficulty: "Medium", URL: "https://leetcode.com/problems/implement-trie-prefix-tree/"},
			{Title: "Replace Words", Difficulty: "Medium", URL: "https://leetcode.com/problems/replace-words/"},
			{Title: "Word Search II", Difficulty: "Hard", URL: "https://leetcode.com/problems/word-search-ii/"},
		},
	},
	{
		Pattern: "Interval Scheduling",
		Notes:   "Sort intervals; merge or choose greedily based on start/end times.",
		Problems: []ProblemRecord{
			{Title: "Non-overlapping Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/non-overlapping-intervals/"},
			{Title: "Meeting Rooms II", Difficulty: "Medium", URL: "https://leetcode.com/problems/meeting-rooms-ii/"},
			{Title: "Insert Interval", Difficulty: "Medium", URL: "https://leetcode.com/problems/insert-interval/"},
		},
	},
	{
		Pattern: "Segment Tree / Fenwick",
		Notes:   "Range queries/updates in O(log n); choose Fenwick for simplicity, segment tree for flexibility.",
		Problems: []ProblemRecord{
			{Title: "Range Sum Query - Mutable", Difficulty: "Medium", URL: "https://leetcode.com/problems/range-sum-query-mutable/"},
			{Title: "Count of Smaller Numbers After Self", Difficulty: "Hard", URL: "https://leetcode.com/problems/count-of-smaller-numbers-after-self/"},
			{Title: "Longest Substring with At Most K Distinct Characters", Difficulty: "Hard", URL: "https://leetcode.com/problems/longest-substring-with-at-most-k-distinct-characters/"},
		},
	},
}
