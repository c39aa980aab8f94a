package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/GRVigo/speedsolve/internal/cfen"
	"github.com/GRVigo/speedsolve/internal/cube"
	"github.com/GRVigo/speedsolve/internal/solve"
	"github.com/GRVigo/speedsolve/internal/tui"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using the specified algorithm.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		algorithm, _ := cmd.Flags().GetString("algorithm")
		dimension, _ := cmd.Flags().GetInt("dimension")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		method, _ := cmd.Flags().GetString("method")
		watch, _ := cmd.Flags().GetBool("watch")
		speed, _ := cmd.Flags().GetInt("speed")
		orient, _ := cmd.Flags().GetString("orient")
		amount, _ := cmd.Flags().GetInt("amount")
		metric, _ := cmd.Flags().GetString("metric")
		noCache, _ := cmd.Flags().GetBool("no-cache")
		noRegrips, _ := cmd.Flags().GetBool("no-regrips")
		noCancellations, _ := cmd.Flags().GetBool("no-cancellations")

		if method != "" {
			if dimension != 3 || startCfen != "" {
				if !headless {
					fmt.Println("--method only supports 3x3 from a solved start; falling back to --algorithm")
				}
			} else {
				preset := solve.DefaultPreset()
				if speed != 0 {
					preset.Speed = solve.Speed(speed)
				}
				if o, ok := parseOrient(orient); ok {
					preset.Orient = o
				} else if !headless && orient != "" {
					fmt.Printf("Unknown --orient %q; using the default\n", orient)
				}
				if amount != 0 {
					preset.Amount = solve.Amount(amount)
				}
				if mt, ok := parseMetric(metric); ok {
					preset.Metric = mt
				} else if !headless && metric != "" {
					fmt.Printf("Unknown --metric %q; using the default\n", metric)
				}
				bits := solve.DefaultBitflags()
				bits.Cache = !noCache
				bits.Regrips = !noRegrips
				bits.Cancellations = !noCancellations
				runMethodSolve(scramble, method, watch, headless, preset, bits)
				return
			}
		}

		// Create cube from starting position
		var c *cube.Cube
		if startCfen != "" {
			// Parse starting CFEN
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting CFEN: %v\n", err)
				}
				os.Exit(1)
			}

			// Validate dimension if specified
			if dimension != 3 && cfenState.Dimension != dimension {
				if !headless {
					fmt.Printf("CFEN dimension %d doesn't match specified dimension %d\n",
						cfenState.Dimension, dimension)
				}
				os.Exit(1)
			}
			dimension = cfenState.Dimension // Use CFEN dimension

			c, err = cfenState.ToCube()
			if err != nil {
				if !headless {
					fmt.Printf("Error converting CFEN to cube: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			// Start with solved cube
			c = cube.NewCube(dimension)
		}

		if !headless {
			fmt.Printf("Solving %dx%dx%d cube with scramble: %s\n", dimension, dimension, dimension, scramble)
			fmt.Printf("Using algorithm: %s\n", algorithm)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		// Apply scramble to cube
		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			c.ApplyMoves(moves)
		}

		if !headless {
			useColor, _ := cmd.Flags().GetBool("color")
			useLetters, _ := cmd.Flags().GetBool("letters")
			useUnicode := useColor && !useLetters

			fmt.Printf("\nCube state after scramble:\n%s\n", c.UnfoldedString(useColor, useUnicode))
		}

		// Get solver and solve
		solver, err := cube.GetSolver(algorithm)
		if err != nil {
			if !headless {
				fmt.Printf("Error getting solver: %v\n", err)
			}
			os.Exit(1)
		}

		result, err := solver.Solve(c)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}

		// Apply solution to get final state
		c.ApplyMoves(result.Solution)

		// Format solution
		var solutionStr strings.Builder
		for i, move := range result.Solution {
			if i > 0 {
				solutionStr.WriteString(" ")
			}
			solutionStr.WriteString(move.String())
		}

		if useCfenOutput {
			// CFEN output mode
			cfenStr, err := cfen.GenerateCFEN(c)
			if err != nil {
				if !headless {
					fmt.Printf("Error generating CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Print(cfenStr)
		} else if headless {
			// Headless mode: output only the space-separated move list
			fmt.Print(solutionStr.String())
		} else {
			// Normal mode: full output
			fmt.Printf("Solution: %s\n", solutionStr.String())
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "beginner", "Solving algorithm to use (beginner, cfop, kociemba)")
	solveCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	solveCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	solveCmd.Flags().String("method", "", "Solve method pipeline to run instead of --algorithm (cfop, roux, petrus, zz, ceor, mehta, nautilus, leor, lbl)")
	solveCmd.Flags().Bool("watch", false, "Show the live progress view instead of waiting for the full report")
	solveCmd.Flags().Int("speed", 0, "Method pipeline search speed 1 (deepest) - 6 (fastest); 0 keeps the default")
	solveCmd.Flags().String("orient", "", "Method pipeline orientations to try: single, all, ud, fb, rl, u, d, f, b, r, l")
	solveCmd.Flags().Int("amount", 0, "Method pipeline first-stage candidates to carry forward (1, 3, 6, 12, 24); 0 keeps the default")
	solveCmd.Flags().String("metric", "", "Method pipeline report metric: movements, qtm, htm, stm, atm, etm, obtm")
	solveCmd.Flags().Bool("no-cache", false, "Disable the method pipeline's single-entry scramble cache")
	solveCmd.Flags().Bool("no-regrips", false, "Disable the method pipeline's post-solve regrip pass")
	solveCmd.Flags().Bool("no-cancellations", false, "Disable the method pipeline's post-solve cancellation report")
}

// parseOrient resolves --orient's string spelling to a solve.Orient value.
func parseOrient(s string) (solve.Orient, bool) {
	switch strings.ToLower(s) {
	case "single":
		return solve.OrientSingle, true
	case "all":
		return solve.OrientAll, true
	case "ud":
		return solve.OrientUD, true
	case "fb":
		return solve.OrientFB, true
	case "rl":
		return solve.OrientRL, true
	case "u":
		return solve.OrientU, true
	case "d":
		return solve.OrientD, true
	case "f":
		return solve.OrientF, true
	case "b":
		return solve.OrientB, true
	case "r":
		return solve.OrientR, true
	case "l":
		return solve.OrientL, true
	default:
		return 0, false
	}
}

// parseMetric resolves --metric's string spelling to a solve.Metric value.
func parseMetric(s string) (solve.Metric, bool) {
	switch strings.ToLower(s) {
	case "movements":
		return solve.Movements, true
	case "qtm":
		return solve.QTM, true
	case "htm":
		return solve.HTM, true
	case "stm":
		return solve.STM, true
	case "atm":
		return solve.ATM, true
	case "etm":
		return solve.ETM, true
	case "obtm":
		return solve.OBTM, true
	default:
		return 0, false
	}
}

// runMethodSolve drives a 3x3 method pipeline solve through the solve
// package's Facade, printing either a live per-stage trace (--watch) or the
// final report once the whole pipeline finishes.
func runMethodSolve(scramble, methodName string, watch, headless bool, preset solve.Preset, bits solve.Bitflags) {
	m, ok := solve.ParseMethod(methodName)
	if !ok {
		if !headless {
			fmt.Printf("Unknown method: %s\n", methodName)
		}
		os.Exit(1)
	}

	req := solve.Request{Scramble: scramble, Method: m, Preset: preset, Bitflags: bits}
	f := solve.NewFacade()
	ctx := context.Background()

	if watch && !headless {
		report, err := tui.Run(ctx, f, req)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(report)
		return
	}

	resp, err := f.SolveSync(ctx, req)
	if err != nil {
		fmt.Print(solve.DescribeFailure(m, err))
		os.Exit(1)
	}
	if headless {
		fmt.Print(resp.Report.Full.String())
	} else {
		fmt.Print(resp.Report.String())
	}
}
