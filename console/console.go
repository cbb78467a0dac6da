package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"raceboard/config"
	"raceboard/leaderboard"
	"raceboard/mlog"
)

// Console 菜单式交互模块，榜单实例由它持有并串行访问
type Console struct {
	cfg   *config.AppConfig
	board *leaderboard.Board
	in    io.Reader
	out   io.Writer
	stop  func()
	lines chan string
	done  chan struct{}
}

func New(cfg *config.AppConfig, board *leaderboard.Board, stop func()) *Console {
	return &Console{
		cfg:   cfg,
		board: board,
		in:    os.Stdin,
		out:   os.Stdout,
		stop:  stop,
	}
}

func (c *Console) Name() string {
	return "console"
}

// 读取协程把输入行喂给lines，Run侧才能同时等待Destroy
func (c *Console) OnInit() error {
	c.done = make(chan struct{})
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case c.lines <- sc.Text():
			case <-c.done:
				return
			}
		}
	}()
	return nil
}

// Destroy 关闭done让Run在下一个输入边界返回，否则app的wg.Wait会卡死
func (c *Console) Destroy() {
	close(c.done)
	mlog.Infof("console destroyed, %d drivers on board", c.board.Size())
}

func (c *Console) Run() {
	c.clearScreen()
	c.printHeader()
	for {
		c.printMenu()
		choice, ok := c.readLine("\nEnter your choice (0-6): ")
		if !ok {
			break // 输入结束等同退出
		}
		switch choice {
		case "1":
			c.addDriver()
		case "2":
			c.updateLapTime()
		case "3":
			c.displayLeaderboard()
		case "4":
			c.removeDriver()
		case "5":
			n := LoadSample(c.board)
			mlog.Infof("sample data loaded, %d drivers", n)
			fmt.Fprintf(c.out, "Success: Sample data loaded - %d drivers\n", n)
		case "6":
			c.clearAll()
		case "0":
			fmt.Fprintln(c.out, "\nThank you for using the leaderboard!")
			c.stopOnce()
			return
		default:
			fmt.Fprintln(c.out, "Error: Invalid choice! Please enter 0-6.")
		}
		c.pause()
	}
	c.stopOnce()
}

func (c *Console) stopOnce() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

// 清屏用ANSI转义，不执行cls/clear外部命令
func (c *Console) clearScreen() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

func (c *Console) printHeader() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(c.out, line)
	fmt.Fprintln(c.out, "        F1 LEADERBOARD MANAGEMENT SYSTEM")
	fmt.Fprintln(c.out, line)
}

func (c *Console) printMenu() {
	line := strings.Repeat("-", 60)
	fmt.Fprintln(c.out, "\n"+line)
	fmt.Fprintln(c.out, "MENU OPTIONS:")
	fmt.Fprintln(c.out, line)
	fmt.Fprintln(c.out, "  1. Add Driver")
	fmt.Fprintln(c.out, "  2. Update Lap Time")
	fmt.Fprintf(c.out, "  3. Display Leaderboard (Top %d)\n", c.cfg.DisplayTop)
	fmt.Fprintln(c.out, "  4. Remove Driver")
	fmt.Fprintln(c.out, "  5. Load Sample Data")
	fmt.Fprintln(c.out, "  6. Clear All Data")
	fmt.Fprintln(c.out, "  0. Exit")
	fmt.Fprintln(c.out, line)
}

func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-c.done:
		return "", false
	}
}

func (c *Console) confirm(prompt string) bool {
	ans, ok := c.readLine(prompt)
	return ok && strings.EqualFold(ans, "y")
}

func (c *Console) pause() {
	fmt.Fprint(c.out, "\nPress Enter to continue...")
	select {
	case <-c.lines:
	case <-c.done:
	}
}

func (c *Console) addDriver() {
	fmt.Fprintln(c.out, "\n--- ADD DRIVER ---")
	input, ok := c.readLine("Enter driver code (3 letters, e.g., LEC): ")
	if !ok {
		return
	}
	code, err := ParseCode(input)
	if err != nil {
		mlog.Warnf("add driver rejected: %v", err)
		fmt.Fprintln(c.out, "Error: Driver code must be exactly 3 letters!")
		return
	}

	if _, exists := c.board.Gap(code); exists {
		fmt.Fprintf(c.out, "Warning: Driver %s already exists!\n", code)
		if !c.confirm("Update their gap time? (y/n): ") {
			return
		}
	}

	input, ok = c.readLine("Enter gap time (seconds, 0 for leader): ")
	if !ok {
		return
	}
	gap, err := ParseGap(input)
	if err != nil {
		mlog.Warnf("add driver rejected: %v", err)
		fmt.Fprintln(c.out, "Error: Invalid gap time! Please enter a non-negative number.")
		return
	}

	if err := c.board.Upsert(code, gap); err != nil {
		mlog.Errorf("upsert %s failed: %v", code, err)
		fmt.Fprintln(c.out, "Error: Could not add driver.")
		return
	}
	mlog.Infof("driver %s upserted, gap=%.3f", code, gap)
	fmt.Fprintf(c.out, "Success: Driver %s added with gap: %.3fs\n", code, gap)
}

func (c *Console) updateLapTime() {
	fmt.Fprintln(c.out, "\n--- UPDATE LAP TIME ---")
	if c.board.Size() == 0 {
		fmt.Fprintln(c.out, "Warning: No drivers in the system. Add drivers first!")
		return
	}

	fmt.Fprintln(c.out, "\nCurrent drivers:")
	for _, code := range c.board.Codes() {
		fmt.Fprintf(c.out, "  - %s\n", code)
	}

	input, ok := c.readLine("\nEnter driver code to update: ")
	if !ok {
		return
	}
	code, err := ParseCode(input)
	if err != nil {
		fmt.Fprintln(c.out, "Error: Driver code must be exactly 3 letters!")
		return
	}

	gap, exists := c.board.Gap(code)
	if !exists {
		c.printNotFound(code)
		return
	}
	fmt.Fprintf(c.out, "Current gap: %.3fs\n", gap)

	input, ok = c.readLine("Enter new gap time (seconds): ")
	if !ok {
		return
	}
	newGap, err := ParseGap(input)
	if err != nil {
		mlog.Warnf("update %s rejected: %v", code, err)
		fmt.Fprintln(c.out, "Error: Invalid gap time! Please enter a non-negative number.")
		return
	}

	oldRank, _ := c.board.Rank(code)
	if err := c.board.Upsert(code, newGap); err != nil {
		mlog.Errorf("upsert %s failed: %v", code, err)
		fmt.Fprintln(c.out, "Error: Could not update driver.")
		return
	}
	newRank, _ := c.board.Rank(code)

	mlog.Infof("driver %s updated, gap=%.3f rank %d->%d", code, newGap, oldRank, newRank)
	fmt.Fprintf(c.out, "Success: %s's gap updated to %.3fs\n", code, newGap)
	switch {
	case newRank < oldRank:
		fmt.Fprintf(c.out, "Position change: %s moved UP from P%d to P%d\n", code, oldRank, newRank)
	case newRank > oldRank:
		fmt.Fprintf(c.out, "Position change: %s dropped from P%d to P%d\n", code, oldRank, newRank)
	default:
		fmt.Fprintf(c.out, "Position unchanged: P%d\n", newRank)
	}
}

func (c *Console) displayLeaderboard() {
	fmt.Fprintf(c.out, "\n--- LEADERBOARD (TOP %d) ---\n", c.cfg.DisplayTop)
	if c.board.Size() == 0 {
		fmt.Fprintln(c.out, "Warning: No drivers in the system yet!")
		return
	}

	rows := c.board.TopK(c.cfg.DisplayTop)
	WriteStandings(c.out, rows)

	total := c.board.Size()
	if total > c.cfg.DisplayTop {
		fmt.Fprintf(c.out, "\n... and %d more drivers\n", total-c.cfg.DisplayTop)
	}
	fmt.Fprintf(c.out, "\nTotal drivers: %d\n", total)
}

func (c *Console) removeDriver() {
	fmt.Fprintln(c.out, "\n--- REMOVE DRIVER ---")
	if c.board.Size() == 0 {
		fmt.Fprintln(c.out, "Warning: No drivers in the system!")
		return
	}

	fmt.Fprintln(c.out, "\nCurrent drivers:")
	for _, code := range c.board.Codes() {
		rank, _ := c.board.Rank(code)
		gap, _ := c.board.Gap(code)
		fmt.Fprintf(c.out, "  P%d - %s (%s)\n", rank, code, FormatGap(rank, gap))
	}

	input, ok := c.readLine("\nEnter driver code to remove: ")
	if !ok {
		return
	}
	code, err := ParseCode(input)
	if err != nil {
		fmt.Fprintln(c.out, "Error: Driver code must be exactly 3 letters!")
		return
	}

	if _, exists := c.board.Gap(code); !exists {
		c.printNotFound(code)
		return
	}

	if !c.confirm(fmt.Sprintf("Warning: Are you sure you want to remove %s? (y/n): ", code)) {
		fmt.Fprintln(c.out, "Removal cancelled.")
		return
	}

	if c.board.Remove(code) {
		mlog.Infof("driver %s removed", code)
		fmt.Fprintf(c.out, "Success: Driver %s removed successfully!\n", code)
	} else {
		fmt.Fprintln(c.out, "Error: Error removing driver")
	}
}

func (c *Console) clearAll() {
	if !c.confirm("Warning: Clear all data? (y/n): ") {
		return
	}
	c.board.Clear()
	mlog.Info("board cleared")
	fmt.Fprintln(c.out, "Success: All data cleared!")
}

// printNotFound 未找到时按首字母给出相近的代码提示
func (c *Console) printNotFound(code string) {
	fmt.Fprintf(c.out, "Error: Driver %s not found!\n", code)
	near := c.board.CodesWithPrefix(code[:1])
	if len(near) > 0 {
		fmt.Fprintf(c.out, "Did you mean: %s\n", strings.Join(near, ", "))
	}
}
