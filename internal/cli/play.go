package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/wg-forge/hextanks-client/display"
	"github.com/wg-forge/hextanks-client/game"
	"github.com/wg-forge/hextanks-client/sim"
	"github.com/wg-forge/hextanks-client/spectator"
	"github.com/wg-forge/hextanks-client/transport"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Connect to a server and play a game with the built-in bot",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := transport.Dial(dialCtx, cfg.Server)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	loginCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	login, err := client.Login(loginCtx, transport.LoginRequest{
		Name:       cfg.Name,
		Password:   cfg.Password,
		Game:       cfg.Game,
		NumTurns:   cfg.NumTurns,
		NumPlayers: cfg.NumPlayers,
		IsFull:     cfg.IsFull,
		IsObserver: cfg.IsObserver,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Printf("logged in as %q (player %d)\n", login.Name, login.IdxPlayer)

	mapCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	mapResp, err := client.Map(mapCtx)
	if err != nil {
		return fmt.Errorf("fetch map: %w", err)
	}

	world := sim.NewWorld(wireMapToGameMap(mapResp))
	selfID := login.IdxPlayer
	world.Players.Add(selfID, login.Name, cfg.IsObserver)
	bot := sim.NewBot(world)

	stateCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	initialState, err := client.GameState(stateCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("fetch initial game state: %w", err)
	}
	initialGS := wireStateToGameState(initialState)
	world.Seed(initialGS)
	world.Sync(initialGS)

	var hub *spectator.Hub
	if cfg.SpectatorAddr != "" {
		hub = spectator.NewHub()
		go hub.Run()
		go func() {
			if err := http.ListenAndServe(cfg.SpectatorAddr, spectator.NewRouter(hub)); err != nil {
				log.Printf("spectator server stopped: %v", err)
			}
		}()
		fmt.Printf("spectator hub listening on %s\n", cfg.SpectatorAddr)
	}

	var queue *display.Queue
	if cfg.Display {
		queue = display.NewQueue(4)
	}

	playLoop := func() error {
		start := time.Now()
		var turns int
		for {
			if err := playTurn(ctx, client, world, bot, selfID, hub, queue); err != nil {
				if errors.Is(err, errGameOver) {
					break
				}
				if errors.Is(err, transport.ErrTimeout) {
					fmt.Println("turn timed out, no action taken")
					continue
				}
				if errors.Is(err, transport.ErrRuleViolation) {
					fmt.Printf("action rejected, resynchronizing: %v\n", err)
					continue
				}
				return fmt.Errorf("turn: %w", err)
			}
			turns++
			fmt.Printf("turn %s complete (%s elapsed)\n", humanize.Ordinal(turns), humanize.Time(start))
		}
		printScoreboard(world)
		if queue != nil {
			queue.Stop()
		}
		return nil
	}

	if queue == nil {
		return playLoop()
	}

	// The viewer owns the OS thread GLFW was locked to at process init, so
	// it must run on this goroutine; the turn loop moves to its own.
	loopErr := make(chan error, 1)
	go func() { loopErr <- playLoop() }()

	viewer, err := display.NewViewer(queue)
	if err != nil {
		return fmt.Errorf("open viewer: %w", err)
	}
	defer viewer.Close()
	if err := viewer.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return <-loopErr
}

var errGameOver = errors.New("game over")

// playTurn runs one full turn: wait for the server to grant it, refresh the
// local mirror, plan and submit actions, then advance every local system.
func playTurn(ctx context.Context, client transport.Client, world *sim.World, bot *sim.Bot, selfID int, hub *spectator.Hub, queue *display.Queue) error {
	turnCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Turn(turnCtx); err != nil {
		return err
	}

	stateCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	state, err := client.GameState(stateCtx)
	if err != nil {
		return err
	}
	if state.Finished {
		return errGameOver
	}

	gs := wireStateToGameState(state)
	world.Sync(gs)
	if corrected := world.Reconcile(gs); len(corrected) > 0 {
		fmt.Printf("resynced %d tank(s) that drifted from the server snapshot\n", len(corrected))
	}

	plan := bot.PlanTurn(selfID)
	for _, action := range plan.Actions {
		vehicleID, err := strconv.Atoi(action.TankID)
		if err != nil {
			return fmt.Errorf("tank id %q is not a wire vehicle id: %w", action.TankID, err)
		}
		if action.IsMove {
			moveCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			err := client.Move(moveCtx, transport.MoveRequest{VehicleID: vehicleID, Target: transport.CubeToWire(action.To)})
			cancel()
			if err != nil {
				return err
			}
			world.ApplyMove(action.TankID, action.To)
		}
		if action.IsShoot {
			shootCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			err := client.Shoot(shootCtx, transport.ShootRequest{VehicleID: vehicleID, Target: transport.CubeToWire(action.At)})
			cancel()
			if err != nil {
				return err
			}
			world.ApplyShoot(action.TankID, action.At)
		}
	}

	world.Turn(selfID)
	if state.NumPlayers > 0 && state.CurrentTurn%state.NumPlayers == 0 {
		world.Round()
	}

	if hub != nil {
		hub.Broadcast(spectator.Snapshot{Type: "game_state", Data: state})
	}
	if queue != nil {
		queue.Push(buildDisplayUpdate(world))
	}
	return nil
}

// buildDisplayUpdate flattens the local mirror's tanks into the snapshot
// shape the native viewer draws.
func buildDisplayUpdate(world *sim.World) display.Update {
	var u display.Update
	for _, tank := range world.Tanks.All() {
		u.Tanks = append(u.Tanks, display.TankSnapshot{
			ID:        tank.ID,
			Archetype: tank.Archetype,
			Position:  tank.Position.Current,
			OwnerID:   tank.Owner.PlayerID,
			Alive:     tank.Alive,
		})
	}
	return u
}

func wireMapToGameMap(resp transport.MapResponse) *game.Map {
	content := game.MapContent{}
	for _, h := range resp.Content["base"] {
		content.Base = append(content.Base, h.ToCube())
	}
	for _, h := range resp.Content["obstacle"] {
		content.Obstacle = append(content.Obstacle, h.ToCube())
	}
	for _, h := range resp.Content["catapult"] {
		content.Catapult = append(content.Catapult, h.ToCube())
	}
	for _, h := range resp.Content["light_repair"] {
		content.LightRepair = append(content.LightRepair, h.ToCube())
	}
	for _, h := range resp.Content["hard_repair"] {
		content.HardRepair = append(content.HardRepair, h.ToCube())
	}
	return game.NewMap(resp.Size, resp.Name, content)
}

func wireStateToGameState(resp transport.GameStateResponse) sim.GameState {
	gs := sim.GameState{
		AttackMatrix:  make(map[int][]int, len(resp.AttackMatrix)),
		CatapultUsage: make(map[game.Cube]int, len(resp.CatapultUsage)),
	}
	for id, v := range resp.Vehicles {
		archetype, ok := game.ArchetypeFromWireName(v.VehicleType)
		if !ok {
			continue
		}
		gs.Vehicles = append(gs.Vehicles, sim.VehicleState{
			ID:        id,
			Archetype: archetype,
			OwnerID:   v.PlayerID,
			Position:  v.Position.ToCube(),
			SpawnHex:  v.SpawnPosition.ToCube(),
			Health:    v.Health,
			Capture:   v.Capture,
		})
	}
	for k, v := range resp.AttackMatrix {
		ownerID := 0
		fmt.Sscanf(k, "%d", &ownerID)
		gs.AttackMatrix[ownerID] = v
	}
	return gs
}

func printScoreboard(world *sim.World) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("PLAYER", "CAPTURE PTS", "DESTRUCTION PTS", "TOTAL")
	for _, p := range world.Players.Combatants() {
		total := p.CapturePoints + p.DestructionPoints
		table.Append(p.Name, fmt.Sprintf("%d", p.CapturePoints), fmt.Sprintf("%d", p.DestructionPoints), fmt.Sprintf("%d", total))
	}
	table.Render()
}
