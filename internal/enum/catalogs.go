package enum

// Material identifies a block or item type.
type Material string

// Sound identifies a playable sound effect.
type Sound string

// Materials is the built-in material catalog. Names use the flattened
// identifiers of Minecraft 1.13 and later (GRASS_BLOCK, not GRASS) and cover a
// hand-picked subset of the platform list up to 1.20.
var Materials = MustCatalog[Material]("material",
	"AIR", "STONE", "GRANITE", "DIORITE", "ANDESITE", "DEEPSLATE", "GRASS_BLOCK", "DIRT",
	"COARSE_DIRT", "PODZOL", "COBBLESTONE", "OAK_PLANKS", "SPRUCE_PLANKS", "BIRCH_PLANKS",
	"JUNGLE_PLANKS", "ACACIA_PLANKS", "DARK_OAK_PLANKS", "BEDROCK", "SAND", "RED_SAND", "GRAVEL",
	"GOLD_ORE", "IRON_ORE", "COAL_ORE", "DIAMOND_ORE", "EMERALD_ORE", "REDSTONE_ORE", "LAPIS_ORE",
	"OAK_LOG", "SPRUCE_LOG", "BIRCH_LOG", "OAK_LEAVES", "GLASS", "SANDSTONE", "WHITE_WOOL",
	"BLACK_WOOL", "GOLD_BLOCK", "IRON_BLOCK", "DIAMOND_BLOCK", "EMERALD_BLOCK", "BRICKS", "TNT",
	"BOOKSHELF", "OBSIDIAN", "TORCH", "CHEST", "CRAFTING_TABLE", "FURNACE", "LADDER", "RAIL", "WATER",
	"LAVA", "ICE", "SNOW_BLOCK", "CACTUS", "CLAY", "NETHERRACK", "SOUL_SAND", "GLOWSTONE",
	"END_STONE", "BEACON", "HOPPER", "BARRIER", "SPONGE", "COAL", "DIAMOND", "EMERALD", "GOLD_INGOT",
	"IRON_INGOT", "NETHERITE_INGOT", "REDSTONE", "LAPIS_LAZULI", "STICK", "BOWL", "STRING", "FEATHER",
	"GUNPOWDER", "WHEAT", "BREAD", "APPLE", "GOLDEN_APPLE", "ENCHANTED_GOLDEN_APPLE", "COOKED_BEEF",
	"ARROW", "BOW", "CROSSBOW", "WOODEN_SWORD", "STONE_SWORD", "IRON_SWORD", "GOLDEN_SWORD",
	"DIAMOND_SWORD", "NETHERITE_SWORD", "WOODEN_PICKAXE", "STONE_PICKAXE", "IRON_PICKAXE",
	"GOLDEN_PICKAXE", "DIAMOND_PICKAXE", "NETHERITE_PICKAXE", "IRON_HELMET", "IRON_CHESTPLATE",
	"IRON_LEGGINGS", "IRON_BOOTS", "DIAMOND_HELMET", "DIAMOND_CHESTPLATE", "DIAMOND_LEGGINGS",
	"DIAMOND_BOOTS", "SHIELD", "ELYTRA", "TOTEM_OF_UNDYING", "ENDER_PEARL", "COMPASS", "CLOCK", "MAP",
	"PAPER", "BOOK", "WRITABLE_BOOK", "NAME_TAG", "PLAYER_HEAD", "EXPERIENCE_BOTTLE",
	"FIREWORK_ROCKET", "NETHER_STAR",
)

// Sounds is the built-in sound catalog, a hand-picked subset of the 1.13+
// sound identifiers.
var Sounds = MustCatalog[Sound]("sound",
	"AMBIENT_CAVE", "BLOCK_ANVIL_LAND", "BLOCK_ANVIL_USE", "BLOCK_CHEST_OPEN", "BLOCK_CHEST_CLOSE",
	"BLOCK_GLASS_BREAK", "BLOCK_LEVER_CLICK", "BLOCK_NOTE_BLOCK_BELL", "BLOCK_NOTE_BLOCK_HARP",
	"BLOCK_NOTE_BLOCK_PLING", "BLOCK_STONE_BREAK", "BLOCK_WOODEN_DOOR_OPEN",
	"ENTITY_ARROW_HIT_PLAYER", "ENTITY_BAT_TAKEOFF", "ENTITY_BLAZE_SHOOT", "ENTITY_CAT_AMBIENT",
	"ENTITY_CHICKEN_EGG", "ENTITY_ENDER_DRAGON_GROWL", "ENTITY_ENDERMAN_TELEPORT",
	"ENTITY_EXPERIENCE_ORB_PICKUP", "ENTITY_FIREWORK_ROCKET_LAUNCH", "ENTITY_GENERIC_EXPLODE",
	"ENTITY_ITEM_PICKUP", "ENTITY_LIGHTNING_BOLT_THUNDER", "ENTITY_PLAYER_LEVELUP",
	"ENTITY_PLAYER_HURT", "ENTITY_VILLAGER_NO", "ENTITY_VILLAGER_YES", "ENTITY_WITHER_SPAWN",
	"ENTITY_ZOMBIE_AMBIENT", "ITEM_TOTEM_USE", "MUSIC_DISC_CAT", "UI_BUTTON_CLICK",
	"UI_TOAST_CHALLENGE_COMPLETE",
)
