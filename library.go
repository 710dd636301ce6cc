package main

import "strings"

// enrichProblemLists tops up each pattern present in the static library until
// it holds at least minCount problems or the library entry is exhausted.
// Existing problems are never removed or reordered; case-insensitive title
// duplicates are skipped.
func enrichProblemLists(patterns []PatternRecord, minCount int) []PatternRecord {
	for i := range patterns {
		library, ok := problemLibrary[patterns[i].Pattern]
		if !ok {
			continue
		}
		existing := make(map[string]bool, len(patterns[i].Problems))
		for _, pr := range patterns[i].Problems {
			existing[strings.ToLower(pr.Title)] = true
		}
		for _, candidate := range library {
			if len(patterns[i].Problems) >= minCount {
				break
			}
			key := strings.ToLower(candidate.Title)
			if existing[key] {
				continue
			}
			patterns[i].Problems = append(patterns[i].Problems, candidate)
			existing[key] = true
		}
	}
	return patterns
}

// problemLibrary is the static name-keyed lookup table of extra candidate
// problems used by enrichment. Keys match pattern display names exactly.
var problemLibrary = map[string][]ProblemRecord{
	"Two Pointers": {
		{Title: "Two Sum II - Input Array Is Sorted", Difficulty: "Medium", URL: "https://leetcode.com/problems/two-sum-ii-input-array-is-sorted/"},
		{Title: "3Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/3sum/"},
		{Title: "Container With Most Water", Difficulty: "Medium", URL: "https://leetcode.com/problems/container-with-most-water/"},
		{Title: "Trapping Rain Water", Difficulty: "Hard", URL: "https://leetcode.com/problems/trapping-rain-water/"},
		{Title: "Remove Nth Node From End of List", Difficulty: "Medium", URL: "https://leetcode.com/problems/remove-nth-node-from-end-of-list/"},
		{Title: "Partition List", Difficulty: "Medium", URL: "https://leetcode.com/problems/partition-list/"},
		{Title: "Squares of a Sorted Array", Difficulty: "Easy", URL: "https://leetcode.com/problems/squares-of-a-sorted-array/"},
		{Title: "Move Zeroes", Difficulty: "Easy", URL: "https://leetcode.com/problems/move-zeroes/"},
	},
	"Binary Search": {
		{Title: "Binary Search", Difficulty: "Easy", URL: "https://leetcode.com/problems/binary-search/"},
		{Title: "Search Insert Position", Difficulty: "Easy", URL: "https://leetcode.com/problems/search-insert-position/"},
		{Title: "Find First and Last Position of Element in Sorted Array", Difficulty: "Medium", URL: "https://leetcode.com/problems/find-first-and-last-position-of-element-in-sorted-array/"},
		{Title: "Search in Rotated Sorted Array", Difficulty: "Medium", URL: "https://leetcode.com/problems/search-in-rotated-sorted-array/"},
		{Title: "Find Minimum in Rotated Sorted Array", Difficulty: "Medium", URL: "https://leetcode.com/problems/find-minimum-in-rotated-sorted-array/"},
		{Title: "Capacity To Ship Packages Within D Days", Difficulty: "Medium", URL: "https://leetcode.com/problems/capacity-to-ship-packages-within-d-days/"},
		{Title: "Koko Eating Bananas", Difficulty: "Medium", URL: "https://leetcode.com/problems/koko-eating-bananas/"},
		{Title: "Median of Two Sorted Arrays", Difficulty: "Hard", URL: "https://leetcode.com/problems/median-of-two-sorted-arrays/"},
	},
	"Sliding Window": {
		{Title: "Longest Substring Without Repeating Characters", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/"},
		{Title: "Minimum Window Substring", Difficulty: "Hard", URL: "https://leetcode.com/problems/minimum-window-substring/"},
		{Title: "Permutation in String", Difficulty: "Medium", URL: "https://leetcode.com/problems/permutation-in-string/"},
		{Title: "Longest Repeating Character Replacement", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-repeating-character-replacement/"},
		{Title: "Sliding Window Maximum", Difficulty: "Hard", URL: "https://leetcode.com/problems/sliding-window-maximum/"},
		{Title: "Fruit Into Baskets", Difficulty: "Medium", URL: "https://leetcode.com/problems/fruit-into-baskets/"},
		{Title: "Subarrays with K Different Integers", Difficulty: "Hard", URL: "https://leetcode.com/problems/subarrays-with-k-different-integers/"},
		{Title: "Minimum Size Subarray Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/minimum-size-subarray-sum/"},
	},
	"Dynamic Programming": {
		{Title: "Climbing Stairs", Difficulty: "Easy", URL: "https://leetcode.com/problems/climbing-stairs/"},
		{Title: "House Robber", Difficulty: "Medium", URL: "https://leetcode.com/problems/house-robber/"},
		{Title: "Coin Change", Difficulty: "Medium", URL: "https://leetcode.com/problems/coin-change/"},
		{Title: "Longest Increasing Subsequence", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-increasing-subsequence/"},
		{Title: "Longest Common Subsequence", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-common-subsequence/"},
		{Title: "Edit Distance", Difficulty: "Hard", URL: "https://leetcode.com/problems/edit-distance/"},
		{Title: "Word Break", Difficulty: "Medium", URL: "https://leetcode.com/problems/word-break/"},
		{Title: "Partition Equal Subset Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/partition-equal-subset-sum/"},
	},
	"Backtracking": {
		{Title: "Subsets", Difficulty: "Medium", URL: "https://leetcode.com/problems/subsets/"},
		{Title: "Permutations", Difficulty: "Medium", URL: "https://leetcode.com/problems/permutations/"},
		{Title: "Combination Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/combination-sum/"},
		{Title: "Letter Combinations of a Phone Number", Difficulty: "Medium", URL: "https://leetcode.com/problems/letter-combinations-of-a-phone-number/"},
		{Title: "Palindrome Partitioning", Difficulty: "Medium", URL: "https://leetcode.com/problems/palindrome-partitioning/"},
		{Title: "N-Queens", Difficulty: "Hard", URL: "https://leetcode.com/problems/n-queens/"},
		{Title: "Word Search", Difficulty: "Medium", URL: "https://leetcode.com/problems/word-search/"},
		{Title: "Generate Parentheses", Difficulty: "Medium", URL: "https://leetcode.com/problems/generate-parentheses/"},
	},
	"Breadth-First Search": {
		{Title: "Binary Tree Level Order Traversal", Difficulty: "Medium", URL: "https://leetcode.com/problems/binary-tree-level-order-traversal/"},
		{Title: "Rotting Oranges", Difficulty: "Medium", URL: "https://leetcode.com/problems/rotting-oranges/"},
		{Title: "Word Ladder", Difficulty: "Hard", URL: "https://leetcode.com/problems/word-ladder/"},
		{Title: "Number of Islands", Difficulty: "Medium", URL: "https://leetcode.com/problems/number-of-islands/"},
		{Title: "Shortest Path in Binary Matrix", Difficulty: "Medium", URL: "https://leetcode.com/problems/shortest-path-in-binary-matrix/"},
		{Title: "Open the Lock", Difficulty: "Medium", URL: "https://leetcode.com/problems/open-the-lock/"},
	},
	"Depth-First Search": {
		{Title: "Number of Islands", Difficulty: "Medium", URL: "https://leetcode.com/problems/number-of-islands/"},
		{Title: "Clone Graph", Difficulty: "Medium", URL: "https://leetcode.com/problems/clone-graph/"},
		{Title: "Course Schedule", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule/"},
		{Title: "Pacific Atlantic Water Flow", Difficulty: "Medium", URL: "https://leetcode.com/problems/pacific-atlantic-water-flow/"},
		{Title: "Graph Valid Tree", Difficulty: "Medium", URL: "https://leetcode.com/problems/graph-valid-tree/"},
		{Title: "Path Sum III", Difficulty: "Medium", URL: "https://leetcode.com/problems/path-sum-iii/"},
	},
	"Greedy": {
		{Title: "Jump Game", Difficulty: "Medium", URL: "https://leetcode.com/problems/jump-game/"},
		{Title: "Jump Game II", Difficulty: "Medium", URL: "https://leetcode.com/problems/jump-game-ii/"},
		{Title: "Merge Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/merge-intervals/"},
		{Title: "Non-overlapping Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/non-overlapping-intervals/"},
		{Title: "Gas Station", Difficulty: "Medium", URL: "https://leetcode.com/problems/gas-station/"},
		{Title: "Partition Labels", Difficulty: "Medium", URL: "https://leetcode.com/problems/partition-labels/"},
		{Title: "Minimum Number of Arrows to Burst Balloons", Difficulty: "Medium", URL: "https://leetcode.com/problems/minimum-number-of-arrows-to-burst-balloons/"},
		{Title: "Candy", Difficulty: "Hard", URL: "https://leetcode.com/problems/candy/"},
	},
	"Disjoint Set / Union-Find": {
		{Title: "Redundant Connection", Difficulty: "Medium", URL: "https://leetcode.com/problems/redundant-connection/"},
		{Title: "Number of Provinces", Difficulty: "Medium", URL: "https://leetcode.com/problems/number-of-provinces/"},
		{Title: "Accounts Merge", Difficulty: "Medium", URL: "https://leetcode.com/problems/accounts-merge/"},
		{Title: "Graph Valid Tree", Difficulty: "Medium", URL: "https://leetcode.com/problems/graph-valid-tree/"},
		{Title: "Evaluate Division", Difficulty: "Medium", URL: "https://leetcode.com/problems/evaluate-division/"},
		{Title: "Smallest String With Swaps", Difficulty: "Medium", URL: "https://leetcode.com/problems/smallest-string-with-swaps/"},
		{Title: "Most Stones Removed with Same Row or Column", Difficulty: "Medium", URL: "https://leetcode.com/problems/most-stones-removed-with-same-row-or-column/"},
	},
	"Topological Sort": {
		{Title: "Course Schedule", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule/"},
		{Title: "Course Schedule II", Difficulty: "Medium", URL: "https://leetcode.com/problems/course-schedule-ii/"},
		{Title: "Alien Dictionary", Difficulty: "Hard", URL: "https://leetcode.com/problems/alien-dictionary/"},
		{Title: "Parallel Courses", Difficulty: "Medium", URL: "https://leetcode.com/problems/parallel-courses/"},
		{Title: "Sequence Reconstruction", Difficulty: "Medium", URL: "https://leetcode.com/problems/sequence-reconstruction/"},
	},
	"Priority Queue / Heap": {
		{Title: "Kth Largest Element in an Array", Difficulty: "Medium", URL: "https://leetcode.com/problems/kth-largest-element-in-an-array/"},
		{Title: "Top K Frequent Elements", Difficulty: "Medium", URL: "https://leetcode.com/problems/top-k-frequent-elements/"},
		{Title: "Task Scheduler", Difficulty: "Medium", URL: "https://leetcode.com/problems/task-scheduler/"},
		{Title: "Merge k Sorted Lists", Difficulty: "Hard", URL: "https://leetcode.com/problems/merge-k-sorted-lists/"},
		{Title: "Find Median from Data Stream", Difficulty: "Hard", URL: "https://leetcode.com/problems/find-median-from-data-stream/"},
		{Title: "K Closest Points to Origin", Difficulty: "Medium", URL: "https://leetcode.com/problems/k-closest-points-to-origin/"},
		{Title: "Reorganize String", Difficulty: "Medium", URL: "https://leetcode.com/problems/reorganize-string/"},
	},
	"Prefix Sum / Difference Array": {
		{Title: "Range Sum Query - Immutable", Difficulty: "Easy", URL: "https://leetcode.com/problems/range-sum-query-immutable/"},
		{Title: "Subarray Sum Equals K", Difficulty: "Medium", URL: "https://leetcode.com/problems/subarray-sum-equals-k/"},
		{Title: "Continuous Subarray Sum", Difficulty: "Medium", URL: "https://leetcode.com/problems/continuous-subarray-sum/"},
		{Title: "Find Pivot Index", Difficulty: "Easy", URL: "https://leetcode.com/problems/find-pivot-index/"},
		{Title: "Longest Subarray of 1's After Deleting One Element", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-subarray-of-1s-after-deleting-one-element/"},
		{Title: "Minimum Value to Get Positive Step by Step Sum", Difficulty: "Easy", URL: "https://leetcode.com/problems/minimum-value-to-get-positive-step-by-step-sum/"},
	},
	"Monotonic Stack / Queue": {
		{Title: "Daily Temperatures", Difficulty: "Medium", URL: "https://leetcode.com/problems/daily-temperatures/"},
		{Title: "Next Greater Element I", Difficulty: "Easy", URL: "https://leetcode.com/problems/next-greater-element-i/"},
		{Title: "Next Greater Element II", Difficulty: "Medium", URL: "https://leetcode.com/problems/next-greater-element-ii/"},
		{Title: "Largest Rectangle in Histogram", Difficulty: "Hard", URL: "https://leetcode.com/problems/largest-rectangle-in-histogram/"},
		{Title: "Maximal Rectangle", Difficulty: "Hard", URL: "https://leetcode.com/problems/maximal-rectangle/"},
		{Title: "Trapping Rain Water", Difficulty: "Hard", URL: "https://leetcode.com/problems/trapping-rain-water/"},
		{Title: "Remove K Digits", Difficulty: "Medium", URL: "https://leetcode.com/problems/remove-k-digits/"},
	},
	"Trie": {
		{Title: "Implement Trie (Prefix Tree)", Difficulty: "Medium", URL: "https://leetcode.com/problems/implement-trie-prefix-tree/"},
		{Title: "Design Add and Search Words Data Structure", Difficulty: "Medium", URL: "https://leetcode.com/problems/design-add-and-search-words-data-structure/"},
		{Title: "Word Search II", Difficulty: "Hard", URL: "https://leetcode.com/problems/word-search-ii/"},
		{Title: "Replace Words", Difficulty: "Medium", URL: "https://leetcode.com/problems/replace-words/"},
		{Title: "Longest Word in Dictionary", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-word-in-dictionary/"},
		{Title: "Design Search Autocomplete System", Difficulty: "Hard", URL: "https://leetcode.com/problems/design-search-autocomplete-system/"},
	},
	"Interval Scheduling": {
		{Title: "Non-overlapping Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/non-overlapping-intervals/"},
		{Title: "Insert Interval", Difficulty: "Medium", URL: "https://leetcode.com/problems/insert-interval/"},
		{Title: "Meeting Rooms II", Difficulty: "Medium", URL: "https://leetcode.com/problems/meeting-rooms-ii/"},
		{Title: "Minimum Number of Arrows to Burst Balloons", Difficulty: "Medium", URL: "https://leetcode.com/problems/minimum-number-of-arrows-to-burst-balloons/"},
		{Title: "Merge Intervals", Difficulty: "Medium", URL: "https://leetcode.com/problems/merge-intervals/"},
		{Title: "Car Pooling", Difficulty: "Medium", URL: "https://leetcode.com/problems/car-pooling/"},
	},
	"Segment Tree / Fenwick": {
		{Title: "Range Sum Query - Mutable", Difficulty: "Medium", URL: "https://leetcode.com/problems/range-sum-query-mutable/"},
		{Title: "Count of Smaller Numbers After Self", Difficulty: "Hard", URL: "https://leetcode.com/problems/count-of-smaller-numbers-after-self/"},
		{Title: "Reverse Pairs", Difficulty: "Hard", URL: "https://leetcode.com/problems/reverse-pairs/"},
		{Title: "Longest Increasing Subsequence", Difficulty: "Medium", URL: "https://leetcode.com/problems/longest-increasing-subsequence/"},
		{Title: "K-th Smallest Prime Fraction", Difficulty: "Hard", URL: "https://leetcode.com/problems/k-th-smallest-prime-fraction/"},
	},
}
